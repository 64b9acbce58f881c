package reveal_test

import (
	"fmt"

	"github.com/phanxgames/reveal"
)

func ExampleBuildTimeline() {
	s := reveal.NewScheduler()
	title := reveal.NewElement("title", reveal.Rect{})
	subtitle := reveal.NewElement("subtitle", reveal.Rect{})

	tl, err := reveal.BuildTimeline(s,
		reveal.Entry{Anim: reveal.TweenTo(title, reveal.Shown(), 1, reveal.Ease("power3.out"))},
		reveal.Entry{Anim: reveal.TweenTo(subtitle, reveal.Shown(), 1, reveal.Ease("power3.out")), Position: "-=0.4"},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tl.Starts(), tl.TotalDuration())
	// Output: [0 0.6] 1.6
}

func ExampleExpand() {
	var targets []reveal.Target
	for i := 0; i < 4; i++ {
		targets = append(targets, reveal.NewElement("card", reveal.Rect{}))
	}
	for _, tw := range reveal.Expand(targets, reveal.StaggerSpec{
		To:       reveal.Shown(),
		Duration: 0.6,
		Each:     0.25,
	}) {
		fmt.Println(tw.Delay)
	}
	// Output:
	// 0
	// 0.25
	// 0.5
	// 0.75
}

func ExampleScope() {
	s := reveal.NewScheduler()
	card := reveal.NewElement("card", reveal.Rect{})
	card.Opacity = 0.5

	scope := reveal.NewScope(card)
	scope.Track(s.To(card, reveal.Props{reveal.Opacity: 1}, 1, "none"))
	for i := 0; i < 30; i++ {
		s.Tick(1.0 / 60)
	}
	scope.Revert()
	scope.Revert()
	fmt.Println(card.Opacity)
	// Output: 0.5
}
