package reveal

import (
	"testing"

	"github.com/pkg/errors"
)

func TestResolveStart(t *testing.T) {
	// Previous entry occupies [2, 3].
	const prevStart, prevEnd = 2.0, 3.0
	tests := []struct {
		token string
		want  float64
	}{
		{"", 3},
		{">", 3},
		{"<", 2},
		{"-=0.4", 2.6},
		{"+=0.5", 3.5},
		{"1.25", 1.25},
		{"0", 0},
		{" -= 0.4 ", 2.6},
		{"-=10", 0},
	}
	for _, tt := range tests {
		got, err := resolveStart(tt.token, prevStart, prevEnd)
		if err != nil {
			t.Errorf("resolveStart(%q): %v", tt.token, err)
			continue
		}
		if !approxEqual(got, tt.want, 1e-9) {
			t.Errorf("resolveStart(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestResolveStartInvalid(t *testing.T) {
	for _, tok := range []string{"abc", "-=", "+=x", "-1", "+=-1", "<<", "1s", "NaN", "=-0.4"} {
		_, err := resolveStart(tok, 0, 1)
		if err == nil {
			t.Errorf("resolveStart(%q) succeeded, want error", tok)
			continue
		}
		if !errors.Is(err, ErrInvalidOffset) {
			t.Errorf("resolveStart(%q) error %v does not wrap ErrInvalidOffset", tok, err)
		}
	}
}

func TestBuildTimelineInvalidOffset(t *testing.T) {
	s := NewScheduler()
	el := NewElement("el", Rect{})
	_, err := BuildTimeline(s,
		Entry{Anim: TweenTo(el, Shown(), 1, nil)},
		Entry{Anim: TweenTo(el, Shown(), 1, nil), Position: "-=oops"},
	)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrInvalidOffset) {
		t.Errorf("error %v does not wrap ErrInvalidOffset", err)
	}
}

func TestMustBuildTimelinePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustBuildTimeline(NewScheduler(), Entry{Position: "bogus"})
}
