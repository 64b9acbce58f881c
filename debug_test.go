package reveal

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	fn()
	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugMode_OverlapWarning(t *testing.T) {
	s := NewScheduler()
	s.SetDebugMode(true)
	el := NewElement("hero", Rect{})

	output := captureStderr(t, func() {
		s.Run(TweenTo(el, Props{Opacity: 0.5}, 1, nil))
		s.Run(TweenTo(el, Props{Opacity: 1}, 1, nil))
		run(s, 0.25)
	})

	if !strings.Contains(output, "warning: concurrent tweens write opacity") {
		t.Errorf("expected overlap warning, got: %q", output)
	}
	if strings.Count(output, "concurrent tweens") != 1 {
		t.Errorf("overlap should be reported once, got: %q", output)
	}
	if !strings.Contains(output, `element "hero"`) {
		t.Errorf("warning should name the element, got: %q", output)
	}
}

func TestDebugMode_DistinctPropsNoWarning(t *testing.T) {
	s := NewScheduler()
	s.SetDebugMode(true)
	el := NewElement("card", Rect{})

	output := captureStderr(t, func() {
		s.Run(TweenTo(el, Props{Opacity: 0.5}, 0.25, nil))
		s.Run(TweenTo(el, Props{Scale: 1.05}, 0.25, nil))
		run(s, 0.25)
	})

	if strings.Contains(output, "concurrent tweens") {
		t.Errorf("unexpected overlap warning: %q", output)
	}
	if !strings.Contains(output, "[reveal] frame") || !strings.Contains(output, "completed") {
		t.Errorf("expected status log lines, got: %q", output)
	}
}

func TestDebugMode_OffIsSilent(t *testing.T) {
	s := NewScheduler()
	el := NewElement("quiet", Rect{})

	output := captureStderr(t, func() {
		s.Run(TweenTo(el, Props{X: 1}, 0.25, nil))
		s.Run(TweenTo(el, Props{X: 2}, 0.25, nil))
		run(s, 0.25)
	})

	if output != "" {
		t.Errorf("expected no output with debug off, got: %q", output)
	}
}
