// Package logging builds the diagnostic logger. The terminal belongs to the
// game while it runs, so diagnostics go to a file or nowhere.
package logging

import (
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New returns a logger writing to path at the given verbosity and a close
// function for the underlying file. An empty path discards everything.
func New(path string, verbosity int) (logr.Logger, func() error, error) {
	if path == "" {
		return logr.Discard(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("open log file: %w", err)
	}

	stdr.SetVerbosity(verbosity)
	std := log.New(f, "", log.LstdFlags|log.Lmicroseconds)
	logger := stdr.NewWithOptions(std, stdr.Options{LogCaller: stdr.Error})
	return logger.WithName("dungeoncrawl"), f.Close, nil
}
