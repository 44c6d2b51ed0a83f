package sink

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func TestFileSinkWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	s, err := NewFileSink(dir)
	if err != nil {
		t.Fatalf("NewFileSink() error = %v", err)
	}

	ctx := context.Background()
	if err := s.Write(ctx, "chart.png", []byte("first"), "image/png"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := s.Write(ctx, "chart.png", []byte("second"), "image/png"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "chart.png"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "second" {
		t.Errorf("file content = %q, want %q", got, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (temporary files left behind)", len(entries))
	}
}

func TestOpenFileTarget(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(context.Background(), dir, Options{})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	fs, ok := s.(*FileSink)
	if !ok {
		t.Fatalf("Open(%q) = %T, want *FileSink", dir, s)
	}
	if fs.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", fs.Dir(), dir)
	}
}

func TestOpenMissingBucket(t *testing.T) {
	if _, err := Open(context.Background(), "s3:///prefix", Options{}); err == nil {
		t.Error("Open(s3:///prefix) error = nil, want error")
	}
}

type fakeS3 struct {
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3SinkWrite(t *testing.T) {
	fake := &fakeS3{}
	s := &S3Sink{client: fake, bucket: "widgets", prefix: "daily"}

	if err := s.Write(context.Background(), "gauge.png", []byte{1, 2, 3}, "image/png"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if len(fake.inputs) != 1 {
		t.Fatalf("PutObject calls = %d, want 1", len(fake.inputs))
	}
	in := fake.inputs[0]
	if got := aws.ToString(in.Bucket); got != "widgets" {
		t.Errorf("Bucket = %q, want %q", got, "widgets")
	}
	if got := aws.ToString(in.Key); got != "daily/gauge.png" {
		t.Errorf("Key = %q, want %q", got, "daily/gauge.png")
	}
	if got := aws.ToString(in.ContentType); got != "image/png" {
		t.Errorf("ContentType = %q, want %q", got, "image/png")
	}
	if !bytes.Equal(fake.bodies[0], []byte{1, 2, 3}) {
		t.Errorf("body = %v, want [1 2 3]", fake.bodies[0])
	}
}

func TestS3SinkWriteError(t *testing.T) {
	boom := errors.New("boom")
	s := &S3Sink{client: &fakeS3{err: boom}, bucket: "b"}
	if err := s.Write(context.Background(), "x.png", nil, "image/png"); !errors.Is(err, boom) {
		t.Errorf("Write() error = %v, want wrapping %v", err, boom)
	}
}

func TestS3SinkKey(t *testing.T) {
	if got := (&S3Sink{}).Key("a.png"); got != "a.png" {
		t.Errorf("Key without prefix = %q, want %q", got, "a.png")
	}
	if got := (&S3Sink{prefix: "p/q/"}).Key("a.png"); got != "p/q/a.png" {
		t.Errorf("Key with prefix = %q, want %q", got, "p/q/a.png")
	}
}
