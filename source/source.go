package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"golang.org/x/term"
)

// StdinName names the standard input source.
const StdinName = "stdin"

// ErrUnavailable is returned when a source cannot be read.
var ErrUnavailable = errors.New("source: unavailable")

// Source represents readable export content.
type Source interface {
	// Name identifies the source in logs and diffs.
	Name() string
	// Read returns the whole content; anything opened is released before
	// Read returns.
	Read(ctx context.Context) ([]byte, error)
}

type location struct {
	fs  afs.Service
	URL string
}

func (l *location) Name() string {
	return l.URL
}

func (l *location) Read(ctx context.Context) ([]byte, error) {
	URL := normalize(l.URL)
	exists, err := l.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to check %s: %w", ErrUnavailable, l.URL, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, l.URL, os.ErrNotExist)
	}
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to download %s: %w", ErrUnavailable, l.URL, err)
	}
	return data, nil
}

type stream struct {
	name   string
	reader io.Reader
}

func (s *stream) Name() string {
	return s.name
}

func (s *stream) Read(ctx context.Context) ([]byte, error) {
	data, err := io.ReadAll(s.reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrUnavailable, s.name, err)
	}
	return data, nil
}

// FromURL creates a source backed by a path or afs URL.
func FromURL(fs afs.Service, URL string) Source {
	if fs == nil {
		fs = afs.New()
	}
	return &location{fs: fs, URL: URL}
}

// FromReader creates a source backed by an open stream. The stream is not
// closed; its owner stays responsible for it.
func FromReader(name string, reader io.Reader) Source {
	return &stream{name: name, reader: reader}
}

// Select returns stdin when it is not an interactive terminal, otherwise the
// source located at URL.
func Select(fs afs.Service, stdin *os.File, URL string) Source {
	if IsPiped(stdin) {
		return FromReader(StdinName, stdin)
	}
	return FromURL(fs, URL)
}

// IsPiped reports whether f is open and not attached to a terminal.
func IsPiped(f *os.File) bool {
	if f == nil {
		return false
	}
	return !term.IsTerminal(int(f.Fd()))
}

func normalize(URL string) string {
	if strings.Contains(URL, "://") {
		return URL
	}
	if abs, err := filepath.Abs(URL); err == nil {
		URL = abs
	}
	return "file://" + filepath.ToSlash(URL)
}
