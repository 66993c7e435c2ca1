package weave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	t.Run("yaml with absent slot", func(t *testing.T) {
		doc, err := ParseDocument([]byte("segments: [\"<p>\", \" \", \"</p>\"]\nsubstitutions: [\"x\", null]\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"<p>", " ", "</p>"}, doc.Segments)

		subs := doc.Subs()
		require.Len(t, subs, 2)
		assert.False(t, subs[0].IsAbsent())
		assert.True(t, subs[1].IsAbsent())
	})

	t.Run("json with numbers and nesting", func(t *testing.T) {
		doc, err := ParseDocument([]byte(`{"segments": ["[", "|", "]"], "substitutions": [["a", "b"], 2.5]}`))
		require.NoError(t, err)

		seq, err := MustNew().Weave(doc)
		require.NoError(t, err)
		assert.Equal(t, Sequence{
			Text("["), Seq(Text("a"), Text("b")),
			Text("|"), Number(2.5),
			Text("]"),
		}, seq)
	})

	t.Run("booleans are unsupported", func(t *testing.T) {
		doc, err := ParseDocument([]byte("segments: [a, b]\nsubstitutions: [true]\n"))
		require.NoError(t, err)

		seq, err := MustNew().Weave(doc)
		require.NoError(t, err)
		require.Len(t, seq, 3)
		assert.Equal(t, KindUnsupported, seq[1].Kind())
	})

	t.Run("missing segments", func(t *testing.T) {
		doc, err := ParseDocument([]byte("substitutions: [x]\n"))
		require.NoError(t, err)
		assert.Nil(t, doc.Segments)

		_, err = MustNew().Weave(doc)
		assert.True(t, IsContractViolation(err))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseDocument([]byte("segments: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgDocumentDecode)
	})
}

func TestWeaver_WeaveNilDocument(t *testing.T) {
	_, err := MustNew().Weave(nil)
	assert.True(t, IsContractViolation(err))
}
