package reveal

// Target is an animatable element owned by the host render layer. The engine
// reads and writes properties through it but never creates or destroys it.
//
// Prop reports false for properties the target does not expose; the engine
// skips those. Implementations must be comparable (typically pointers) so
// scopes can key baselines by target.
type Target interface {
	Prop(p Prop) (float64, bool)
	SetProp(p Prop, v float64)
}

// disposable is implemented by targets whose host element can go away.
type disposable interface {
	Disposed() bool
}

// missing reports whether t resolved to nothing. Operations on missing targets
// are silent no-ops.
func missing(t Target) bool {
	if t == nil {
		return true
	}
	if d, ok := t.(disposable); ok {
		return d.Disposed()
	}
	return false
}

// Capture returns the current value of every property t exposes.
func Capture(t Target) Props {
	if missing(t) {
		return nil
	}
	out := make(Props, len(AllProps))
	for _, p := range AllProps {
		if v, ok := t.Prop(p); ok {
			out[p] = v
		}
	}
	return out
}

// Set immediately writes props to t in AllProps order. Properties t does not
// expose are ignored, as is a missing target.
func Set(t Target, props Props) {
	if missing(t) || len(props) == 0 {
		return
	}
	for _, p := range AllProps {
		v, ok := props[p]
		if !ok {
			continue
		}
		if _, exposed := t.Prop(p); exposed {
			t.SetProp(p, v)
		}
	}
}

// FailOpen writes the visible, un-transformed baseline to t. Used when an
// animation cannot complete normally so content never stays hidden.
func FailOpen(t Target) {
	Set(t, Shown())
}
