package weave

// SlotTrace describes what Interleave did with one segment and the
// substitution that follows it.
type SlotTrace struct {
	Index        int    // Segment index
	Segment      string // Literal segment text
	Substitution string // Kind name of the substitution, or "absent"
	Outcome      string // SlotEmitted, SlotDropped or SlotFinal
}

// Explanation contains a step-by-step account of one interleave and render.
type Explanation struct {
	// Slots has one entry per segment, in source order
	Slots []SlotTrace

	// Ignored counts substitutions past the last slot
	Ignored int

	// Sequence is the interleaved result
	Sequence Sequence

	// Leaves is the flattened render order
	Leaves Sequence

	// Output is the rendered text
	Output string
}

// Explain interleaves and renders like Tag, recording each slot decision.
func (w *Weaver) Explain(segments []string, subs []Substitution) (*Explanation, error) {
	seq, err := w.Interleave(segments, subs)
	if err != nil {
		return nil, err
	}
	leaves, err := w.Flatten(seq)
	if err != nil {
		return nil, err
	}
	output, err := w.Render(seq)
	if err != nil {
		return nil, err
	}

	exp := &Explanation{
		Slots:    make([]SlotTrace, len(segments)),
		Sequence: seq,
		Leaves:   leaves,
		Output:   output,
	}
	last := len(segments) - 1
	for i, segment := range segments {
		trace := SlotTrace{Index: i, Segment: segment, Substitution: KindNameAbsent}
		switch {
		case i == last:
			trace.Outcome = SlotFinal
		case i < len(subs) && !subs[i].IsAbsent():
			trace.Substitution = subs[i].KindName()
			trace.Outcome = SlotEmitted
		default:
			trace.Outcome = SlotDropped
		}
		exp.Slots[i] = trace
	}
	if slots := max(last, 0); len(subs) > slots {
		exp.Ignored = len(subs) - slots
	}
	return exp, nil
}

// Explain traces an interleave and render using default options.
func Explain(segments []string, subs []Substitution) (*Explanation, error) {
	return defaultWeaver.Explain(segments, subs)
}
