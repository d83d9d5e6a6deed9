package slsdb

import (
	"log/slog"

	"github.com/hupe1980/slsdb/codec"
)

type options struct {
	codec            codec.Codec
	key              string
	files            LocalFileAccess
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Store construction.
type Option func(*options)

// WithCodec configures the codec used to encode the document.
//
// If nil is passed, codec.Default is used.
//
// Custom serialize/deserialize pairs plug in through codec.Funcs:
//
//	db, _ := slsdb.New(path, remote, State{}, slsdb.WithCodec(codec.Funcs{
//	    MarshalFunc:   myMarshal,
//	    UnmarshalFunc: myUnmarshal,
//	}))
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithKey sets the remote object key.
// By default the key is the base name of the local path.
func WithKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithLocalFiles replaces the local file access used for the local copy.
// Pass nil to use OSFiles.
//
// Example with an in-memory filesystem:
//
//	db, _ := slsdb.New("/db.json", remote, State{}, slsdb.WithLocalFiles(slsdb.AferoFiles(afero.NewMemMapFs())))
func WithLocalFiles(files LocalFileAccess) Option {
	return func(o *options) {
		if files == nil {
			files = OSFiles()
		}
		o.files = files
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &slsdb.BasicMetricsCollector{}
//	db, _ := slsdb.New(path, remote, State{}, slsdb.WithMetricsCollector(metrics))
//	// ... use db ...
//	stats := metrics.GetStats()
//	fmt.Printf("Writes: %d, Avg latency: %dns\n", stats.WriteCount, stats.WriteAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := slsdb.NewJSONLogger(slog.LevelInfo)
//	db, _ := slsdb.New(path, remote, State{}, slsdb.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		files:            OSFiles(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
