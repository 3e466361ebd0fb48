package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Writer writes finalized artifacts to the target directory: Go artifacts
// are rendered with jennifer, documents are serialized as XML.
type Writer struct {
	cfg     *Config
	workers int

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics *WriterMetrics
}

// WriterMetrics tracks writing performance.
type WriterMetrics struct {
	FilesWritten int
	TotalBytes   int64
}

// NewWriter creates a writer for the configured target directory.
func NewWriter(c *Config) *Writer {
	return &Writer{
		cfg:     c,
		workers: c.workers(),
		metrics: &WriterMetrics{},
	}
}

// Metrics returns the writing metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.metrics
}

// FileName returns the file name an artifact is written under.
func FileName(a Artifact) string {
	if a.Kind() == KindDocument {
		return a.ArtifactName() + ".xml"
	}
	return snake(a.ArtifactName()) + ".go"
}

// Render returns the file name and the content of an artifact.
func (w *Writer) Render(a Artifact) (string, []byte, error) {
	name := FileName(a)
	var (
		buf bytes.Buffer
		err error
	)
	switch a := a.(type) {
	case *Interface:
		err = a.File(w.cfg).Render(&buf)
	case *Provider:
		err = a.File(w.cfg).Render(&buf)
	case *Document:
		err = a.WriteXML(&buf)
	default:
		return "", nil, NewGenerationError("render", name, fmt.Sprintf("unsupported artifact %T", a), nil)
	}
	if err != nil {
		return "", nil, NewGenerationError(a.Kind().String(), name, "render artifact", err)
	}
	return name, buf.Bytes(), nil
}

// Write writes every finalized artifact of the result in parallel and
// returns the written paths in artifact order.
func (w *Writer) Write(ctx context.Context, res *Result) ([]string, error) {
	if w.cfg.Target == "" {
		return nil, NewConfigError("Target", nil, "no target directory set")
	}
	if err := os.MkdirAll(w.cfg.Target, 0o755); err != nil {
		return nil, NewGenerationError("write", w.cfg.Target, "create output directory", err)
	}
	artifacts := res.Artifacts()
	paths := make([]string, len(artifacts))
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(w.workers)
	for i, a := range artifacts {
		errg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			p, err := w.WriteArtifact(a)
			paths[i] = p
			return err
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// WriteArtifact renders one artifact and writes it to the target directory.
func (w *Writer) WriteArtifact(a Artifact) (string, error) {
	name, data, err := w.Render(a)
	if err != nil {
		return "", err
	}
	path := filepath.Join(w.cfg.Target, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", NewGenerationError("write", path, "write file", err)
	}
	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(data))
	w.mu.Unlock()
	return path, nil
}
