package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/itsatony/go-weave"
)

// explainOutput represents JSON output for explain
type explainOutput struct {
	Slots    []explainSlot `json:"slots"`
	Ignored  int           `json:"ignored"`
	Sequence []any         `json:"sequence"`
	Leaves   []any         `json:"leaves"`
	Output   string        `json:"output"`
}

type explainSlot struct {
	Index        int    `json:"index"`
	Segment      string `json:"segment"`
	Substitution string `json:"substitution"`
	Outcome      string `json:"outcome"`
}

func runExplain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseCommonFlags(CmdNameExplain, args, explainFormats)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidArguments, err)
		return ExitCodeUsageError
	}

	w, doc, code := prepare(cfg, stdin, stderr)
	if code != ExitCodeSuccess {
		return code
	}

	exp, err := w.Explain(doc.Segments, doc.Subs())
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		return ExitCodeError
	}

	var data []byte
	if cfg.format == OutputFormatJSON {
		data, err = explainJSON(exp)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgJSONMarshalFailed, err)
			return ExitCodeError
		}
	} else {
		data = explainText(exp)
	}

	if err := writeOutput(cfg.outputPath, data, stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}
	return ExitCodeSuccess
}

func explainText(exp *weave.Explanation) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, ExplainTextHeader)
	for _, slot := range exp.Slots {
		fmt.Fprintf(&buf, ExplainTextSlotFormat+FmtNewline,
			slot.Index, slot.Segment, slot.Substitution, slot.Outcome)
	}
	if exp.Ignored > 0 {
		fmt.Fprintf(&buf, ExplainTextIgnoredFormat+FmtNewline, exp.Ignored)
	}
	fmt.Fprintf(&buf, ExplainTextOutputFormat+FmtNewline, exp.Output)
	return buf.Bytes()
}

func explainJSON(exp *weave.Explanation) ([]byte, error) {
	output := explainOutput{
		Slots:    make([]explainSlot, len(exp.Slots)),
		Ignored:  exp.Ignored,
		Sequence: sequenceJSON(exp.Sequence),
		Leaves:   sequenceJSON(exp.Leaves),
		Output:   exp.Output,
	}
	for i, slot := range exp.Slots {
		output.Slots[i] = explainSlot{
			Index:        slot.Index,
			Segment:      slot.Segment,
			Substitution: slot.Substitution,
			Outcome:      slot.Outcome,
		}
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(jsonBytes, '\n'), nil
}
