// Package weave reassembles tagged templates.
//
// A tagged template call delivers its literal segments and its
// substitution values separately. Interleave merges them back into one
// sequence in source order, and Render turns such a sequence (or any
// nested sequence of the same shape) into text:
//
//	seq, _ := weave.Interleave([]string{"<p>", "</p>"}, weave.Substitutions("hello"))
//	// seq: ["<p>", "hello", "</p>"]
//	out, _ := weave.Render(seq)
//	// out: "<p>hello</p>"
//
// # Values
//
// Value is a closed union of text, numbers, nested sequences and
// unsupported payloads. Substitution wraps a Value that may be absent;
// absent slots are dropped from the sequence instead of rendering as empty
// text. FromAny and Substitutions adapt ordinary Go values, mapping nil to
// Absent.
//
// # Rendering
//
// Text is copied verbatim, numbers use their shortest decimal form (3.0
// renders as "3") and nested sequences are rendered recursively with no
// separators. Unsupported values such as booleans are omitted by default;
// WithUnsupportedStrategy can log or reject them instead. Nesting deeper
// than WithMaxDepth fails with a recursion limit error.
//
// No escaping is applied. Callers that need HTML escaping must escape
// substitution values before interleaving.
//
// # Configuration
//
//	w, _ := weave.New(
//	    weave.WithMaxDepth(32),
//	    weave.WithStrictArity(true),
//	    weave.WithUnsupportedStrategy(weave.UnsupportedStrategyThrow),
//	    weave.WithLogger(logger),
//	)
package weave
