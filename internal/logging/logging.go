package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const permission = 0o644

// Builder assembles a zerolog.Logger from a file path or a writer.
// With neither set, log output is discarded.
type Builder struct {
	writer io.Writer
	path   string
	level  zerolog.Level
}

// Logger is a built logger plus the file it owns, if any.
type Logger struct {
	zerolog.Logger
	file *os.File
}

func New() *Builder {
	return &Builder{level: zerolog.InfoLevel}
}

func (b *Builder) FromPath(path string) *Builder {
	b.path = path
	return b
}

func (b *Builder) FromWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// Level accepts zerolog level names; unknown names keep the current level.
func (b *Builder) Level(name string) *Builder {
	if lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name))); err == nil && name != "" {
		b.level = lvl
	}
	return b
}

func (b *Builder) Debug(on bool) *Builder {
	if on {
		b.level = zerolog.DebugLevel
	}
	return b
}

func (b *Builder) Make() (*Logger, error) {
	l := &Logger{}
	w := b.writer
	if b.path != "" {
		f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		l.file = f
		w = zerolog.SyncWriter(f)
	}
	if w == nil {
		w = io.Discard
	}
	l.Logger = zerolog.New(w).Level(b.level).With().Timestamp().Logger()
	return l, nil
}

// Close releases the log file opened by FromPath.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
