package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps the terminal quiet unless something goes wrong.
const DefaultLevel = "warn"

// Options selects where and how much the engine logs.
type Options struct {
	Level string
	File  string
	// Quiet discards output when no file is set, so a full-screen UI is not overdrawn.
	Quiet bool
}

// New builds a logger. The returned closer releases the log file, if any.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	level := opts.Level
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", level, err)
	}

	log := logrus.New()
	log.SetLevel(lvl)

	var closer io.Closer = nopCloser{}
	switch {
	case opts.File != "":
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
		}
		log.SetOutput(rotating)
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
		closer = rotating
	case opts.Quiet:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{})
	}
	return log, closer, nil
}

// Mute discards terminal output. A logger writing to a file is left alone.
func Mute(log *logrus.Logger) {
	if _, ok := log.Out.(*lumberjack.Logger); ok {
		return
	}
	log.SetOutput(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
