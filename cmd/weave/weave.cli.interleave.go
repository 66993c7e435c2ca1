package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itsatony/go-weave"
)

// unsupportedJSON marks a value the renderer would skip
type unsupportedJSON struct {
	Unsupported string `json:"unsupported"`
}

func runInterleave(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseCommonFlags(CmdNameInterleave, args, interleaveFormats)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidArguments, err)
		return ExitCodeUsageError
	}

	w, doc, code := prepare(cfg, stdin, stderr)
	if code != ExitCodeSuccess {
		return code
	}

	seq, err := w.Weave(doc)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInterleaveFailed, err)
		return ExitCodeError
	}

	jsonBytes, err := json.MarshalIndent(sequenceJSON(seq), "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgJSONMarshalFailed, err)
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, append(jsonBytes, '\n'), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

// sequenceJSON converts a sequence into JSON-encodable values
func sequenceJSON(seq weave.Sequence) []any {
	out := make([]any, len(seq))
	for i, v := range seq {
		out[i] = valueJSON(v)
	}
	return out
}

func valueJSON(v weave.Value) any {
	switch v.Kind() {
	case weave.KindText:
		s, _ := v.AsText()
		return s
	case weave.KindNumber:
		// Keep the canonical text form so NaN and Inf stay encodable
		return json.RawMessage(numberJSON(v))
	case weave.KindSequence:
		items, _ := v.AsSequence()
		return sequenceJSON(items)
	default:
		return unsupportedJSON{Unsupported: v.TypeName()}
	}
}

func numberJSON(v weave.Value) string {
	n, _ := v.AsNumber()
	text := weave.FormatNumber(n)
	switch text {
	case weave.NumberTextNaN, weave.NumberTextPosInf, weave.NumberTextNegInf:
		return fmt.Sprintf("%q", text)
	}
	return text
}
