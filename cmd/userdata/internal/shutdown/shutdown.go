// Package shutdown runs cleanup functions when the process is interrupted or
// its work is done, whichever comes first.
package shutdown

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/thalib/personaldata/cmd/userdata/internal/constants"
)

// ShutdownFunc is a function that will be called during shutdown
type ShutdownFunc func(ctx context.Context) error

// Logger receives shutdown progress messages
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// Config holds configuration for the shutdown handler
type Config struct {
	// Timeout is the maximum time to wait for shutdown completion
	Timeout time.Duration

	// Signals is the list of OS signals to listen for
	Signals []os.Signal

	// Logger is used for shutdown logging (optional)
	Logger Logger
}

// DefaultConfig returns the default shutdown configuration
func DefaultConfig() Config {
	return Config{
		Timeout: constants.ShutdownTimeout,
		Signals: []os.Signal{os.Interrupt, syscall.SIGTERM},
	}
}

// Handler manages ordered cleanup
type Handler struct {
	config   Config
	funcs    []namedShutdownFunc
	mu       sync.Mutex
	sigChan  chan os.Signal
	stopChan chan struct{}
	doneChan chan struct{}
	once     sync.Once
	err      error
}

// namedShutdownFunc is a shutdown function with a name for logging
type namedShutdownFunc struct {
	name string
	fn   ShutdownFunc
}

// NewHandler creates a new shutdown handler
func NewHandler(config Config) *Handler {
	if config.Timeout == 0 {
		config.Timeout = constants.ShutdownTimeout
	}
	if config.Signals == nil {
		config.Signals = []os.Signal{os.Interrupt, syscall.SIGTERM}
	}

	return &Handler{
		config:   config,
		sigChan:  make(chan os.Signal, 1),
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Register adds a shutdown function to be called during shutdown
// Functions are called in LIFO order (last registered, first called)
func (h *Handler) Register(name string, fn ShutdownFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.funcs = append(h.funcs, namedShutdownFunc{name: name, fn: fn})
}

// RegisterCloser is a convenience method to register an io.Closer for shutdown
func (h *Handler) RegisterCloser(name string, closer io.Closer) {
	h.Register(name, func(ctx context.Context) error {
		return closer.Close()
	})
}

// Start listens for shutdown signals until a signal arrives or Trigger is
// called, then runs the registered functions. It returns a context that is
// canceled as soon as shutdown begins.
func (h *Handler) Start(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	signal.Notify(h.sigChan, h.config.Signals...)

	go func() {
		defer signal.Stop(h.sigChan)
		select {
		case sig := <-h.sigChan:
			h.logInfo("Shutdown signal received: %v", sig)
		case <-h.stopChan:
		case <-parent.Done():
		}
		cancel()
		h.performShutdown()
	}()

	return ctx
}

// Trigger initiates shutdown programmatically. Safe to call more than once.
func (h *Handler) Trigger() {
	h.once.Do(func() { close(h.stopChan) })
}

// Wait blocks until shutdown is complete and returns the first cleanup error
func (h *Handler) Wait() error {
	<-h.doneChan
	return h.err
}

// performShutdown executes all registered shutdown functions
func (h *Handler) performShutdown() {
	defer close(h.doneChan)

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	h.mu.Lock()
	funcs := make([]namedShutdownFunc, len(h.funcs))
	copy(funcs, h.funcs)
	h.mu.Unlock()

	for i := len(funcs) - 1; i >= 0; i-- {
		f := funcs[i]
		if err := f.fn(ctx); err != nil {
			h.logError("Error shutting down %s: %v", f.name, err)
			if h.err == nil {
				h.err = fmt.Errorf("%s: %w", f.name, err)
			}
			continue
		}
		h.logInfo("Shut down %s", f.name)
	}

	if ctx.Err() == context.DeadlineExceeded && h.err == nil {
		h.logError("Shutdown timeout exceeded")
		h.err = ctx.Err()
	}
}

func (h *Handler) logInfo(format string, args ...any) {
	if h.config.Logger != nil {
		h.config.Logger.Infof(format, args...)
	}
}

func (h *Handler) logError(format string, args ...any) {
	if h.config.Logger != nil {
		h.config.Logger.Errorf(format, args...)
	}
}
