package weave

import (
	"go.uber.org/zap"
)

// Interleave merges literal segments with substitutions in source order:
// segment 0, substitution 0, segment 1, ... segment K-1. Absent
// substitutions are dropped, so the segments around them become adjacent.
// Missing trailing substitutions count as absent.
//
// A nil segments slice is a contract violation; an empty one yields an
// empty sequence. Substitutions past slot K-2 are ignored unless the
// Weaver was built WithStrictArity, in which case a present one fails.
func (w *Weaver) Interleave(segments []string, subs []Substitution) (Sequence, error) {
	if segments == nil {
		return nil, NewSegmentsMissingError()
	}
	w.log().Debug(LogMsgInterleaveStart,
		zap.Int(LogFieldSegments, len(segments)),
		zap.Int(LogFieldSubstitutions, len(subs)))

	slots := max(len(segments)-1, 0)
	if len(subs) > slots {
		if err := w.checkExtra(subs[slots:], slots, len(segments)); err != nil {
			return nil, err
		}
	}

	result := make(Sequence, 0, 2*len(segments))
	for i, segment := range segments {
		result = append(result, Text(segment))
		if i >= slots || i >= len(subs) {
			continue
		}
		if v, ok := subs[i].Value(); ok {
			result = append(result, v)
		} else {
			w.log().Debug(LogMsgSlotDropped, zap.Int(LogFieldSlot, i))
		}
	}

	w.log().Debug(LogMsgInterleaveEnd, zap.Int(LogFieldItems, len(result)))
	return result, nil
}

// checkExtra handles substitutions that have no slot. extra starts at slot
// index offset.
func (w *Weaver) checkExtra(extra []Substitution, offset, segmentCount int) error {
	if w.conf().strictArity {
		for i, s := range extra {
			if !s.IsAbsent() {
				return NewExtraSubstitutionError(offset+i, segmentCount)
			}
		}
		return nil
	}
	w.log().Debug(LogMsgExtraSubstitutions, zap.Int(LogFieldSubstitutions, len(extra)))
	return nil
}
