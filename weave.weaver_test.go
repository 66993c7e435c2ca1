package weave

import (
	"errors"
	"strconv"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWeaver_TagDepthLimit(t *testing.T) {
	t.Run("self-referential substitution", func(t *testing.T) {
		cyclic := []any{"x", nil}
		cyclic[1] = cyclic

		out, err := MustNew().Tag([]string{"[", "]"}, cyclic)
		require.Error(t, err)
		assert.Empty(t, out)
		assert.True(t, IsRecursionLimit(err))
	})

	t.Run("matches render limit", func(t *testing.T) {
		w := MustNew(WithMaxDepth(3))

		out, err := w.Tag([]string{"[", "]"}, deepSlice(3))
		require.NoError(t, err)
		assert.Equal(t, "[leaf]", out)

		_, err = w.Tag([]string{"[", "]"}, deepSlice(4))
		require.Error(t, err)
		assert.True(t, IsRecursionLimit(err))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		depth, ok := customErr.GetMetadata(MetaKeyCurrentDepth)
		assert.True(t, ok)
		assert.Equal(t, "4", depth)
	})

	t.Run("unlimited depth still bounds cycles", func(t *testing.T) {
		cyclic := []any{nil}
		cyclic[0] = cyclic

		_, err := MustNew(WithMaxDepth(0)).Tag([]string{"", ""}, cyclic)
		require.Error(t, err)
		assert.True(t, IsRecursionLimit(err))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		maxDepth, _ := customErr.GetMetadata(MetaKeyMaxDepth)
		assert.Equal(t, strconv.Itoa(ConversionDepthCeiling), maxDepth)
	})

	t.Run("logs the failing slot", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		w := MustNew(WithMaxDepth(2), WithLogger(zap.New(core)))

		_, err := w.Tag([]string{"a", "b", "c"}, "ok", deepSlice(3))
		require.Error(t, err)

		entries := logs.FilterMessage(LogMsgDepthLimitReached).All()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(1), entries[0].ContextMap()[LogFieldSlot])
	})
}

func TestWeaver_WeaveDepthLimit(t *testing.T) {
	doc := &Document{
		Segments:      []string{"a", "b"},
		Substitutions: []any{deepSlice(4)},
	}

	_, err := MustNew(WithMaxDepth(3)).Weave(doc)
	require.Error(t, err)
	assert.True(t, IsRecursionLimit(err))
}

func TestWeaver_ZeroValue(t *testing.T) {
	var w Weaver

	assert.Equal(t, DefaultMaxDepth, w.MaxDepth())

	out, err := w.Tag([]string{"<p>", "</p>"}, "hi")
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", out)

	_, err = w.Render(nested(DefaultMaxDepth+1, Text("x")))
	assert.True(t, IsRecursionLimit(err))

	exp, err := w.Explain([]string{"a", "b"}, Substitutions(nil))
	require.NoError(t, err)
	assert.Equal(t, "ab", exp.Output)

	out, err = w.Render(Sequence{Text("a"), Unsupported(true)})
	require.NoError(t, err)
	assert.Equal(t, "a", out)
}
