// Package sink stores rendered images on the local disk or in an
// S3-compatible bucket.
package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sink is a destination for rendered images.
type Sink interface {
	// Write stores data under name, replacing any previous object.
	Write(ctx context.Context, name string, data []byte, contentType string) error
}

// Options configure Open.
type Options struct {
	// Region is the AWS region for s3:// targets.
	Region string
	// Endpoint overrides the S3 endpoint (MinIO and similar). Setting it
	// enables path-style addressing.
	Endpoint string
}

// Open returns the sink for target: "s3://bucket/prefix" selects S3,
// anything else is a local directory.
func Open(ctx context.Context, target string, opts Options) (Sink, error) {
	if rest, ok := strings.CutPrefix(target, "s3://"); ok {
		bucket, prefix, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return nil, fmt.Errorf("sink: missing bucket in %q", target)
		}
		return NewS3Sink(ctx, bucket, prefix, opts.Region, opts.Endpoint)
	}
	return NewFileSink(target)
}

// FileSink writes images into a directory.
type FileSink struct {
	dir string
}

// NewFileSink creates dir if needed and returns a sink writing into it.
func NewFileSink(dir string) (*FileSink, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("sink: create %s: %w", dir, err)
	}
	return &FileSink{dir: dir}, nil
}

// Dir returns the target directory.
func (s *FileSink) Dir() string {
	return s.dir
}

// Write writes data to dir/name through a temporary file, so readers never
// observe a partial image.
func (s *FileSink) Write(_ context.Context, name string, data []byte, _ string) error {
	path := filepath.Join(s.dir, filepath.Base(name))
	tmp, err := os.CreateTemp(s.dir, "."+filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("sink: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("sink: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("sink: write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("sink: write %s: %w", path, err)
	}
	return nil
}
