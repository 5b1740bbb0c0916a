// Package source resolves almanac references into readable streams.
//
// A reference is "-" for standard input, an "s3://bucket/key" URI, or a
// local path. Directories expand into every almanac file beneath them.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/vk/almanacgo/internal/ctxlog"
	"github.com/vk/almanacgo/internal/fsutil"
)

// Stdin is the reference that selects standard input.
const Stdin = "-"

// Format names the almanac encoding of a source.
type Format string

const (
	FormatText Format = "text"
	FormatHCL  Format = "hcl"
)

// Extensions lists the file extensions picked up when expanding a directory.
var Extensions = []string{".txt", ".hcl"}

// DetectFormat picks the encoding from the reference's extension. Anything
// that is not .hcl is read as the text format.
func DetectFormat(ref string) Format {
	if strings.EqualFold(path.Ext(ref), ".hcl") {
		return FormatHCL
	}
	return FormatText
}

// Expand turns a directory reference into its almanac files. Stdin, S3 and
// plain file references are returned unchanged.
func Expand(ref string) ([]string, error) {
	if ref == Stdin || IsS3(ref) {
		return []string{ref}, nil
	}
	info, err := os.Stat(ref)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", ref, err)
	}
	if !info.IsDir() {
		return []string{ref}, nil
	}
	files, err := fsutil.FindFilesByExtension(ref, Extensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory %s: %w", ref, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no almanac files (%s) found in %s", strings.Join(Extensions, ", "), ref)
	}
	return files, nil
}

// OpenerOption configures an Opener.
type OpenerOption func(*Opener)

// WithS3Client makes the opener use getter instead of building a client
// from the environment on first use.
func WithS3Client(getter ObjectGetter) OpenerOption {
	return func(o *Opener) {
		o.s3 = getter
	}
}

// Opener opens references. It is safe for concurrent use.
type Opener struct {
	stdin io.Reader

	mu    sync.Mutex
	s3    ObjectGetter
	newS3 func(ctx context.Context) (ObjectGetter, error)
}

// NewOpener returns an Opener reading "-" from stdin.
func NewOpener(stdin io.Reader, opts ...OpenerOption) *Opener {
	o := &Opener{stdin: stdin, newS3: NewS3ClientFromEnv}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open returns a reader for ref. The caller must close it.
func (o *Opener) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	logger := ctxlog.FromContext(ctx)

	switch {
	case ref == Stdin:
		logger.Debug("Reading almanac from standard input.")
		if o.stdin == nil {
			return nil, fmt.Errorf("standard input is not available")
		}
		return io.NopCloser(o.stdin), nil
	case IsS3(ref):
		bucket, key, err := ParseS3URI(ref)
		if err != nil {
			return nil, err
		}
		client, err := o.s3Client(ctx)
		if err != nil {
			return nil, err
		}
		logger.Debug("Fetching almanac from S3.", "bucket", bucket, "key", key)
		return getObject(ctx, client, bucket, key)
	default:
		logger.Debug("Opening almanac file.", "path", ref)
		f, err := os.Open(ref)
		if err != nil {
			return nil, fmt.Errorf("failed to open almanac %s: %w", ref, err)
		}
		return f, nil
	}
}

func (o *Opener) s3Client(ctx context.Context) (ObjectGetter, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.s3 != nil {
		return o.s3, nil
	}
	client, err := o.newS3(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to configure S3 client: %w", err)
	}
	o.s3 = client
	return client, nil
}
