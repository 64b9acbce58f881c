package ebitenhost

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ErrEmptyScript is returned by LoadScript for a script with no steps.
var ErrEmptyScript = errors.New("script has no steps")

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	DY       float64 `json:"dy,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input and screenshots across frames for
// automated visual checks of a page. Attach it with Page.SetScriptRunner.
//
// Actions: "scroll" (dy, frames), "scrollTo" (y, duration), "move" (x, y),
// "click" (x, y), "leave", "skip", "wait" (frames) and "screenshot" (label).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, errors.Wrap(err, "parse script")
	}
	if len(sc.Steps) == 0 {
		return nil, errors.Wrap(ErrEmptyScript, "parse script")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "scroll", "scrollTo", "move", "click", "leave", "skip", "wait", "screenshot":
		default:
			return nil, errors.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Page.update.
func (r *ScriptRunner) step(p *Page) {
	if r.done {
		return
	}
	if len(p.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		p.Screenshot(st.Label)
	case "scroll":
		p.InjectScroll(st.DY, st.Frames)
	case "scrollTo":
		p.InjectScrollTo(st.Y, st.Duration)
	case "move":
		p.InjectMove(st.X, st.Y)
	case "click":
		p.InjectClick(st.X, st.Y)
	case "leave":
		p.InjectLeave()
	case "skip":
		p.InjectSkip()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(p.injectQueue) == 0 {
		r.done = true
	}
}
