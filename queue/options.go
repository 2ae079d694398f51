package queue

import (
	"io"

	"github.com/vskvj3/ringq/internal/utils"
)

// Config is the YAML configuration understood by WithConfig.
type Config = utils.Config

// LoadConfig reads a config file. A missing file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	return utils.LoadConfig(filename)
}

// ParseConfig decodes a YAML or JSON config document.
func ParseConfig(data []byte) (*Config, error) {
	return utils.ParseConfig(data)
}

type options struct {
	alloc  Allocator
	logOut io.Writer
	debug  bool
}

// Option configures a Queue or a Chain.
type Option func(*options)

func defaultOptions() options {
	return options{
		alloc: HeapAllocator{},
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.alloc == nil {
		o.alloc = HeapAllocator{}
	}
	return o
}

func (o options) logger() *utils.Logger {
	return utils.NewLogger(o.logOut, o.debug)
}

// WithAllocator sets the allocator the queue reserves memory from. Sharing
// one allocator between queues shares its budget.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}

// WithLogger sends log output to w; debug enables the tracing lines.
func WithLogger(w io.Writer, debug bool) Option {
	return func(o *options) {
		o.logOut = w
		o.debug = debug
	}
}

// WithConfig applies a loaded config: its debug flag, and a BudgetAllocator
// when it sets any limit.
func WithConfig(cfg *Config) Option {
	return func(o *options) {
		if cfg == nil {
			return
		}
		o.debug = cfg.Debug
		if cfg.MaxBytes > 0 || cfg.MaxAllocs > 0 {
			o.alloc = NewBudgetAllocator(cfg.MaxBytes, cfg.MaxAllocs)
		}
	}
}
