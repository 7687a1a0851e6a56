package config

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

// SetupLog points the standard logger at LogFile, or at fallback when no file
// is configured. The returned function closes the file.
func (c *Config) SetupLog(prefix string, fallback io.Writer) (func() error, error) {
	log.SetPrefix(prefix + ": ")
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if c.LogFile == "" {
		log.SetOutput(fallback)
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %q", c.LogFile)
	}
	log.SetOutput(f)
	return f.Close, nil
}
