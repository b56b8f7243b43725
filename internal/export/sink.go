package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink delivers exported artifacts to the hosting environment.
type Sink interface {
	// WriteFile persists or downloads a named file.
	WriteFile(ctx context.Context, name string, data []byte) error
	// OpenURL hands a link to the environment (browser tab, terminal, redirect).
	OpenURL(ctx context.Context, url string) error
}

// FileSink writes files into a directory and prints URLs to a writer.
type FileSink struct {
	Dir string
	Out io.Writer
}

// NewFileSink creates a FileSink rooted at dir. URLs are written to out.
func NewFileSink(dir string, out io.Writer) *FileSink {
	return &FileSink{Dir: dir, Out: out}
}

// WriteFile writes data to Dir/name, creating Dir if needed.
func (s *FileSink) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(s.Dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// OpenURL prints url on its own line.
func (s *FileSink) OpenURL(ctx context.Context, url string) error {
	return writeLine(ctx, s.Out, url)
}

// WriterSink streams file contents and URLs to a single writer.
type WriterSink struct {
	Out io.Writer
}

// WriteFile copies data to Out.
func (s WriterSink) WriteFile(ctx context.Context, _ string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.Out.Write(data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// OpenURL prints url on its own line.
func (s WriterSink) OpenURL(ctx context.Context, url string) error {
	return writeLine(ctx, s.Out, url)
}

func writeLine(ctx context.Context, w io.Writer, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w == nil {
		w = os.Stdout
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("write url: %w", err)
	}
	return nil
}
