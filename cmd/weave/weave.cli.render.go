package main

import (
	"fmt"
	"io"
)

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseCommonFlags(CmdNameRender, args, renderFormats)
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

	// Stream straight to stdout; files are rendered first and replaced atomically
	if cfg.outputPath == FlagDefaultOutput {
		if _, err := w.RenderTo(stdout, seq); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
			return ExitCodeError
		}
		return ExitCodeSuccess
	}

	result, err := w.Render(seq)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}
