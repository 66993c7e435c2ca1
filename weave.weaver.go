package weave

import (
	"io"
	"strconv"

	"go.uber.org/zap"
)

// Weaver interleaves template segments with substitutions and renders the
// result. A Weaver is immutable after New and safe for concurrent use. The
// zero Weaver uses the default options without logging.
type Weaver struct {
	config *weaverConfig
	logger *zap.Logger
}

var (
	zeroConfig = defaultWeaverConfig()
	nopLogger  = zap.NewNop()
)

func (w *Weaver) conf() *weaverConfig {
	if w.config == nil {
		return zeroConfig
	}
	return w.config
}

func (w *Weaver) log() *zap.Logger {
	if w.logger == nil {
		return nopLogger
	}
	return w.logger
}

// New creates a Weaver with the given options.
func New(opts ...Option) (*Weaver, error) {
	config := defaultWeaverConfig()
	for _, opt := range opts {
		opt(config)
	}

	if config.maxDepth < 0 {
		return nil, NewInvalidMaxDepthError(config.maxDepth)
	}
	switch config.unsupported {
	case UnsupportedStrategyOmit, UnsupportedStrategyLog, UnsupportedStrategyThrow:
	default:
		return nil, NewInvalidStrategyError(strconv.Itoa(int(config.unsupported)))
	}

	logger := config.logger
	if logger == nil {
		logger = nopLogger
	}
	logger.Debug(LogMsgWeaverCreated,
		zap.Int(LogFieldMaxDepth, config.maxDepth),
		zap.String(LogFieldStrategy, config.unsupported.String()))

	return &Weaver{
		config: config,
		logger: logger,
	}, nil
}

// MustNew creates a new Weaver and panics if there's an error.
func MustNew(opts ...Option) *Weaver {
	w, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return w
}

// MaxDepth returns the configured nesting limit (0 = unlimited).
func (w *Weaver) MaxDepth() int { return w.conf().maxDepth }

// Tag is the template-tag integration point: it converts the Go
// substitution values, interleaves them with segments and renders the
// result in one step. Values nested past the depth limit, including
// self-referential slices, fail with a recursion limit error.
func (w *Weaver) Tag(segments []string, subs ...any) (string, error) {
	converted, err := w.substitutions(subs)
	if err != nil {
		return "", err
	}
	seq, err := w.Interleave(segments, converted)
	if err != nil {
		return "", err
	}
	return w.Render(seq)
}

// substitutions converts Go values under the weaver's depth limit.
func (w *Weaver) substitutions(values []any) ([]Substitution, error) {
	limit := w.conf().maxDepth
	if limit == 0 {
		limit = ConversionDepthCeiling
	}
	subs := make([]Substitution, len(values))
	for i, v := range values {
		sub, err := substitutionOf(v, limit)
		if err != nil {
			w.log().Debug(LogMsgDepthLimitReached,
				zap.Int(LogFieldSlot, i),
				zap.Int(LogFieldMaxDepth, limit))
			return nil, err
		}
		subs[i] = sub
	}
	return subs, nil
}

var defaultWeaver = MustNew()

// Interleave merges segments and substitutions using default options.
func Interleave(segments []string, subs []Substitution) (Sequence, error) {
	return defaultWeaver.Interleave(segments, subs)
}

// Render stringifies seq using default options.
func Render(seq Sequence) (string, error) {
	return defaultWeaver.Render(seq)
}

// RenderTo streams seq to out using default options.
func RenderTo(out io.Writer, seq Sequence) (int64, error) {
	return defaultWeaver.RenderTo(out, seq)
}

// Flatten reduces seq to its leaves using default options.
func Flatten(seq Sequence) (Sequence, error) {
	return defaultWeaver.Flatten(seq)
}

// Tag interleaves and renders using default options.
func Tag(segments []string, subs ...any) (string, error) {
	return defaultWeaver.Tag(segments, subs...)
}
