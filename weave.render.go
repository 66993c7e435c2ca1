package weave

import (
	"io"
	"strings"

	"go.uber.org/zap"
)

// Render converts seq into a single string. Text is appended verbatim,
// numbers in canonical decimal form, and nested sequences recursively. No
// separators are inserted. Unsupported values follow the configured
// UnsupportedStrategy; the default omits them.
func (w *Weaver) Render(seq Sequence) (string, error) {
	w.log().Debug(LogMsgRenderStart, zap.Int(LogFieldItems, len(seq)))

	var sb strings.Builder
	err := w.walk(seq, 0, func(leaf Value) error {
		sb.WriteString(leafText(leaf))
		return nil
	})
	if err != nil {
		return "", err
	}

	w.log().Debug(LogMsgRenderEnd, zap.Int(LogFieldBytes, sb.Len()))
	return sb.String(), nil
}

// RenderTo streams the rendering of seq to out leaf by leaf and returns
// the number of bytes written. On failure, bytes already written stay
// written.
func (w *Weaver) RenderTo(out io.Writer, seq Sequence) (int64, error) {
	w.log().Debug(LogMsgRenderStart, zap.Int(LogFieldItems, len(seq)))

	var written int64
	err := w.walk(seq, 0, func(leaf Value) error {
		n, err := io.WriteString(out, leafText(leaf))
		written += int64(n)
		if err != nil {
			return NewWriteError(err)
		}
		return nil
	})
	if err != nil {
		return written, err
	}

	w.log().Debug(LogMsgRenderEnd, zap.Int64(LogFieldBytes, written))
	return written, nil
}

// Flatten returns the text and number leaves of seq in render order, with
// nested sequences expanded and unsupported values handled as in Render.
func (w *Weaver) Flatten(seq Sequence) (Sequence, error) {
	flat := make(Sequence, 0, len(seq))
	err := w.walk(seq, 0, func(leaf Value) error {
		flat = append(flat, leaf)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return flat, nil
}

// walk visits the leaves of seq in order. depth is the nesting level of
// seq itself; the top level is 0.
func (w *Weaver) walk(seq Sequence, depth int, emit func(Value) error) error {
	if maxDepth := w.conf().maxDepth; maxDepth > 0 && depth > maxDepth {
		w.log().Debug(LogMsgDepthLimitReached,
			zap.Int(LogFieldDepth, depth),
			zap.Int(LogFieldMaxDepth, maxDepth))
		return NewMaxDepthError(depth, maxDepth)
	}

	for _, item := range seq {
		switch item.kind {
		case KindText, KindNumber:
			if err := emit(item); err != nil {
				return err
			}
		case KindSequence:
			if err := w.walk(item.seq, depth+1, emit); err != nil {
				return err
			}
		default:
			if err := w.unsupported(item, depth); err != nil {
				return err
			}
		}
	}
	return nil
}

// unsupported applies the configured strategy to a value that has no text form.
func (w *Weaver) unsupported(item Value, depth int) error {
	switch w.conf().unsupported {
	case UnsupportedStrategyThrow:
		return NewUnsupportedValueError(item.TypeName(), depth)
	case UnsupportedStrategyLog:
		w.log().Warn(LogMsgUnsupportedOmitted,
			zap.String(LogFieldValueType, item.TypeName()),
			zap.Int(LogFieldDepth, depth))
	}
	return nil
}

// leafText returns the text of a text or number value.
func leafText(v Value) string {
	if v.kind == KindNumber {
		return FormatNumber(v.num)
	}
	return v.text
}
