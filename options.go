package xlref

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Options holds configuration for a Navigator.
type Options struct {
	logger    logrus.FieldLogger
	maxColumn int
	maxRow    int
}

func defaultOptions() *Options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return &Options{
		logger:    discard,
		maxColumn: MaxColumn,
		maxRow:    MaxRow,
	}
}

// Option configures a Navigator.
type Option func(*Options)

// WithLogger sets the logger that records applied and ignored navigations
// at debug level (default: discard).
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) { o.logger = logger }
}

// WithMaxColumn limits navigation to columns up to and including last.
func WithMaxColumn(last ColumnReference) Option {
	return func(o *Options) { o.maxColumn = last.value }
}

// WithMaxRow limits navigation to rows up to and including last.
func WithMaxRow(last RowReference) Option {
	return func(o *Options) { o.maxRow = last.value }
}
