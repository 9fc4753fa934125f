package formula

import "github.com/sirupsen/logrus"

// defLogger is the package logger. Its default level keeps debug traces
// silent.
var defLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package. Calls that do
// not carry WithLogger use it.
func SetLogger(l logrus.FieldLogger) { defLogger = l }

// Option is an option for evaluating. The zero configuration imposes no
// limits and no tracing.
type Option interface {
	option(config) config
}

type (
	depthopt int
	tokopt   int
	paropt   int
	debugopt bool
	logopt   struct{ l logrus.FieldLogger }
)

// config holds general data for one evaluation.
type config struct {
	// maxDepth bounds grammar recursion; 0 means unlimited.
	maxDepth int
	// maxTokens bounds the token sequence length; 0 means unlimited.
	maxTokens int
	// workers bounds EvalAll concurrency; 0 picks a default.
	workers int
	// debug gates trace logging and token dumps.
	debug  bool
	logger logrus.FieldLogger
}

func newConfig(opts []Option) config {
	cfg := config{logger: defLogger}
	for _, opt := range opts {
		cfg = opt.option(cfg)
	}
	return cfg
}

// MaxDepth limits the nesting depth of a formula. A formula that recurses
// deeper fails with ExpressionTooComplex. n <= 0 means unlimited, which is
// the default.
func MaxDepth(n int) Option {
	return depthopt(n)
}

func (o depthopt) option(cfg config) config {
	cfg.maxDepth = int(o)
	return cfg
}

// MaxTokens limits the number of tokens in a formula. A longer formula fails
// with ExpressionTooComplex before parsing. n <= 0 means unlimited, which is
// the default.
func MaxTokens(n int) Option {
	return tokopt(n)
}

func (o tokopt) option(cfg config) config {
	cfg.maxTokens = int(o)
	return cfg
}

// Parallelism sets the worker pool size used by EvalAll. n <= 0 picks a
// default sized to the machine.
func Parallelism(n int) Option {
	return paropt(n)
}

func (o paropt) option(cfg config) config {
	cfg.workers = int(o)
	return cfg
}

// Debug enables tracing of each evaluation step through the logger. Traces
// are emitted at debug level, so the logger must be configured accordingly
// to show them.
func Debug(v bool) Option {
	return debugopt(v)
}

func (o debugopt) option(cfg config) config {
	cfg.debug = bool(o)
	return cfg
}

// WithLogger sets the logger for this evaluation instead of the package one.
func WithLogger(l logrus.FieldLogger) Option {
	return logopt{l}
}

func (o logopt) option(cfg config) config {
	if o.l != nil {
		cfg.logger = o.l
	}
	return cfg
}
