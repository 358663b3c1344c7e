// Package logging configures the global apex/log logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
)

type Options struct {
	Level string
	// Format is text or json.
	Format string
	// Output is stdout, stderr or a file path. Files are appended to.
	Output string
}

var (
	mu      sync.Mutex
	current io.Closer
)

// Setup installs a handler for opts and sets the level. A previously opened log file is closed.
func Setup(opts Options) error {
	level, err := log.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		return fmt.Errorf("log level %q: %w", opts.Level, err)
	}

	w, closer, err := openOutput(opts.Output)
	if err != nil {
		return err
	}

	var handler log.Handler
	switch strings.ToLower(opts.Format) {
	case "", "text":
		handler = text.New(w)
	case "json":
		handler = json.New(w)
	default:
		if closer != nil {
			_ = closer.Close()
		}
		return fmt.Errorf("unknown log format %q", opts.Format)
	}

	mu.Lock()
	defer mu.Unlock()

	log.SetHandler(handler)
	log.SetLevel(level)

	if current != nil {
		_ = current.Close()
	}
	current = closer
	return nil
}

// SetLevel changes the level without touching the handler.
func SetLevel(s string) error {
	level, err := log.ParseLevel(strings.ToLower(s))
	if err != nil {
		return fmt.Errorf("log level %q: %w", s, err)
	}
	log.SetLevel(level)
	return nil
}

// Close closes the log file opened by Setup, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		return nil
	}
	err := current.Close()
	current = nil
	return err
}

func openOutput(output string) (io.Writer, io.Closer, error) {
	switch output {
	case "", "stderr":
		return os.Stderr, nil, nil
	case "stdout":
		return os.Stdout, nil, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log output %s: %w", output, err)
	}
	return f, f, nil
}
