package weave

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// nested wraps leaf in levels nested sequences.
func nested(levels int, leaf Value) Sequence {
	v := leaf
	for i := 0; i < levels; i++ {
		v = Seq(v)
	}
	return Sequence{v}
}

func TestRender_Leaves(t *testing.T) {
	w := MustNew()

	tests := []struct {
		name     string
		input    Sequence
		expected string
	}{
		{"empty", Sequence{}, ""},
		{"nil", nil, ""},
		{"text", Sequence{Text("a")}, "a"},
		{"no separators", Sequence{Text("a"), Text("b"), Text("c")}, "abc"},
		{"whole number", Sequence{Number(3.0)}, "3"},
		{"fraction", Sequence{Number(3.5)}, "3.5"},
		{"mixed", Sequence{Text("n="), Number(42), Text("!")}, "n=42!"},
		{"nested", Sequence{Text("["), Seq(Text("a"), Text("b")), Text("]")}, "[ab]"},
		{"deeply nested", Sequence{Seq(Seq(Seq(Text("deep"))))}, "deep"},
		{"empty nested", Sequence{Text("a"), Seq(), Text("b")}, "ab"},
		{"unsupported alone", Sequence{Unsupported(true)}, ""},
		{"unsupported between", Sequence{Text("a"), Unsupported(true), Text("b")}, "ab"},
		{"unsupported nested", Sequence{Seq(Unsupported(struct{}{}), Text("x"))}, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := w.Render(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRender_FlatteningIdempotence(t *testing.T) {
	w := MustNew()
	x := Seq(Text("a"), Number(1), Seq(Text("b")))
	inner, ok := x.AsSequence()
	require.True(t, ok)

	wrapped, err := w.Render(Sequence{x})
	require.NoError(t, err)
	direct, err := w.Render(inner)
	require.NoError(t, err)

	assert.Equal(t, direct, wrapped)
	assert.Equal(t, "a1b", direct)
}

func TestRender_MaxDepth(t *testing.T) {
	w := MustNew(WithMaxDepth(3))

	t.Run("at limit", func(t *testing.T) {
		result, err := w.Render(nested(3, Text("ok")))
		require.NoError(t, err)
		assert.Equal(t, "ok", result)
	})

	t.Run("beyond limit", func(t *testing.T) {
		result, err := w.Render(nested(4, Text("too deep")))
		require.Error(t, err)
		assert.Empty(t, result)
		assert.True(t, IsRecursionLimit(err))
		assert.Contains(t, err.Error(), ErrMsgMaxDepthExceeded)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		depth, ok := customErr.GetMetadata(MetaKeyCurrentDepth)
		assert.True(t, ok)
		assert.Equal(t, "4", depth)
		maxDepth, ok := customErr.GetMetadata(MetaKeyMaxDepth)
		assert.True(t, ok)
		assert.Equal(t, "3", maxDepth)
	})

	t.Run("unlimited", func(t *testing.T) {
		unlimited := MustNew(WithMaxDepth(0))
		result, err := unlimited.Render(nested(500, Text("bottom")))
		require.NoError(t, err)
		assert.Equal(t, "bottom", result)
	})

	t.Run("default limit", func(t *testing.T) {
		def := MustNew()
		_, err := def.Render(nested(DefaultMaxDepth, Text("x")))
		require.NoError(t, err)
		_, err = def.Render(nested(DefaultMaxDepth+1, Text("x")))
		assert.True(t, IsRecursionLimit(err))
	})
}

func TestRender_UnsupportedStrategies(t *testing.T) {
	input := Sequence{Text("a"), Unsupported(true), Text("b")}

	t.Run("omit", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		w := MustNew(WithLogger(zap.New(core)))
		result, err := w.Render(input)
		require.NoError(t, err)
		assert.Equal(t, "ab", result)
		assert.Equal(t, 0, logs.Len())
	})

	t.Run("log", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		w := MustNew(WithUnsupportedStrategy(UnsupportedStrategyLog), WithLogger(zap.New(core)))
		result, err := w.Render(input)
		require.NoError(t, err)
		assert.Equal(t, "ab", result)

		entries := logs.FilterMessage(LogMsgUnsupportedOmitted).All()
		require.Len(t, entries, 1)
		assert.Equal(t, "bool", entries[0].ContextMap()[LogFieldValueType])
	})

	t.Run("throw", func(t *testing.T) {
		w := MustNew(WithUnsupportedStrategy(UnsupportedStrategyThrow))
		result, err := w.Render(input)
		require.Error(t, err)
		assert.Empty(t, result)
		assert.True(t, IsUnsupportedValue(err))
		assert.False(t, IsRecursionLimit(err))
	})
}

func TestRenderTo_MatchesRender(t *testing.T) {
	w := MustNew()
	input := Sequence{Text("<ul>"), Seq(Text("<li>"), Number(1), Text("</li>")), Unsupported(false), Text("</ul>")}

	expected, err := w.Render(input)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := w.RenderTo(&buf, input)
	require.NoError(t, err)
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, int64(len(expected)), n)
}

// failingWriter accepts limit bytes and then fails.
type failingWriter struct {
	limit int
	buf   strings.Builder
}

var errWriterClosed = errors.New("writer closed")

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.buf.Len()+len(p) > f.limit {
		return 0, errWriterClosed
	}
	return f.buf.Write(p)
}

func TestRenderTo_WriterError(t *testing.T) {
	w := MustNew()
	out := &failingWriter{limit: 3}

	n, err := w.RenderTo(out, Sequence{Text("abc"), Text("def")})

	require.Error(t, err)
	assert.ErrorIs(t, err, errWriterClosed)
	assert.Contains(t, err.Error(), ErrMsgWriteFailed)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, "abc", out.buf.String())
}

func TestRenderTo_PartialOutputOnDepthError(t *testing.T) {
	w := MustNew(WithMaxDepth(1))
	var buf bytes.Buffer

	_, err := w.RenderTo(&buf, Sequence{Text("head"), Seq(Seq(Text("x")))})

	require.Error(t, err)
	assert.True(t, IsRecursionLimit(err))
	assert.Equal(t, "head", buf.String())
}

func TestFlatten(t *testing.T) {
	w := MustNew()
	input := Sequence{
		Text("a"),
		Seq(Number(1), Seq(Text("b"), Unsupported(true))),
		Text("c"),
	}

	flat, err := w.Flatten(input)
	require.NoError(t, err)
	assert.Equal(t, Sequence{Text("a"), Number(1), Text("b"), Text("c")}, flat)

	fromFlat, err := w.Render(flat)
	require.NoError(t, err)
	fromNested, err := w.Render(input)
	require.NoError(t, err)
	assert.Equal(t, fromNested, fromFlat)
}

func TestFlatten_DepthLimit(t *testing.T) {
	w := MustNew(WithMaxDepth(1))

	flat, err := w.Flatten(nested(2, Text("x")))

	require.Error(t, err)
	assert.Nil(t, flat)
	assert.True(t, IsRecursionLimit(err))
}
