package logging

import (
	"io"
	"sort"
	"sync"
	"time"
)

// RegistryConfig holds the settings shared by every logger in a Registry
type RegistryConfig struct {
	Output          io.Writer
	Level           Level
	ProductTag      string
	SensitiveFields []string
	Clock           func() time.Time
}

// Registry owns named loggers. A name is bound to one logger for the
// registry's lifetime, so asking for it again never adds a second sink.
type Registry struct {
	mu      sync.Mutex
	config  RegistryConfig
	loggers map[string]*Logger
}

// NewRegistry creates an empty registry
func NewRegistry(config RegistryConfig) *Registry {
	return &Registry{
		config:  config,
		loggers: make(map[string]*Logger),
	}
}

// GetLogger returns the logger registered under name, creating it on first use.
func (r *Registry) GetLogger(name string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		return l
	}

	l := NewLogger(LoggerConfig{
		Name:            name,
		Level:           r.config.Level,
		Output:          r.config.Output,
		ProductTag:      r.config.ProductTag,
		SensitiveFields: r.config.SensitiveFields,
		Clock:           r.config.Clock,
	})
	r.loggers[name] = l
	return l
}

// Lookup returns the logger registered under name without creating one.
func (r *Registry) Lookup(name string) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.loggers[name]
	return l, ok
}

// Names returns the registered logger names in sorted order
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
