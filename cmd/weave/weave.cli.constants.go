package main

// Command names
const (
	CmdNameRender     = "render"
	CmdNameInterleave = "interleave"
	CmdNameExplain    = "explain"
	CmdNameVersion    = "version"
	CmdNameHelp       = "help"
)

// Flag names - long form
const (
	FlagInput   = "input"
	FlagConfig  = "config"
	FlagOutput  = "output"
	FlagFormat  = "format"
	FlagVerbose = "verbose"
)

// Flag names - short form
const (
	FlagInputShort   = "i"
	FlagConfigShort  = "c"
	FlagOutputShort  = "o"
	FlagFormatShort  = "F"
	FlagVerboseShort = "v"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgInvalidArguments  = "invalid arguments"
	ErrMsgMissingInput      = "input document required"
	ErrMsgInvalidDocument   = "invalid document"
	ErrMsgInvalidConfig     = "invalid config"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgInterleaveFailed  = "interleave failed"
	ErrMsgRenderFailed      = "render failed"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgJSONMarshalFailed = "failed to marshal JSON"
)

// Log messages
const (
	LogMsgConfigLoaded    = "config loaded"
	LogMsgDocumentDecoded = "document decoded"
	LogFieldPath          = "path"
	LogFieldSegments      = "segments"
)

// Help text templates
const (
	HelpMainUsage = `go-weave - Tagged template interleave and render CLI

Usage:
    weave <command> [options]

Commands:
    render      Render a template document to text
    interleave  Print the interleaved sequence as JSON
    explain     Show how each slot was handled
    version     Show version information
    help        Show help for a command

Use "weave help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template document to text

Usage:
    weave render [options]

Options:
    -i, --input <file>      Document file, YAML or JSON (use "-" for stdin)
    -c, --config <file>     Config file (max_depth, strict_arity, unsupported)
    -o, --output <file>     Output file (default: stdout)
    -v, --verbose           Log to stderr

Document:
    segments: ["<p>", " ", "</p>"]
    substitutions: ["x", null]

Examples:
    weave render -i page.yaml
    cat page.json | weave render -i -
    weave render -i page.yaml -c weave.yaml -o page.html`

	HelpInterleaveUsage = `Print the interleaved sequence as JSON

Usage:
    weave interleave [options]

Options:
    -i, --input <file>      Document file, YAML or JSON (use "-" for stdin)
    -c, --config <file>     Config file
    -o, --output <file>     Output file (default: stdout)`

	HelpExplainUsage = `Show how each slot was handled

Usage:
    weave explain [options]

Options:
    -i, --input <file>      Document file, YAML or JSON (use "-" for stdin)
    -c, --config <file>     Config file
    -o, --output <file>     Output file (default: stdout)
    -F, --format <format>   Output format: text, json (default: text)`

	HelpVersionUsage = `Show version information

Usage:
    weave version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    weave help [command]

Commands:
    render      Show help for render command
    interleave  Show help for interleave command
    explain     Show help for explain command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-weave version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Explain output format templates
const (
	ExplainTextSlotFormat    = "  [%d] %q %s (%s)"
	ExplainTextHeader        = "Slots:"
	ExplainTextIgnoredFormat = "Ignored substitutions: %d"
	ExplainTextOutputFormat  = "Output: %q"
)

// CLI metadata
const (
	CLIName        = "weave"
	CLIDescription = "Tagged template interleave and render CLI"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtInvalidValue    = "%s: %q"
	FmtNewline         = "\n"
)
