package artifact

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/logging"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

// GzipExt is appended to pre-compressed siblings
const GzipExt = ".gz"

// Writer persists rendered artifacts
type Writer interface {
	Write(ctx context.Context, a types.Artifact) error
}

// FileWriter writes artifacts to the build tree. Writes are independent:
// a failure leaves earlier artifacts of the same package in place.
type FileWriter struct {
	logger      *logging.Logger
	metrics     *monitoring.Metrics
	precompress bool
}

// NewFileWriter creates a writer for the build tree
func NewFileWriter(logger *logging.Logger) *FileWriter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &FileWriter{logger: logger.Named("artifact")}
}

// WithMetrics sets the metrics collector
func (w *FileWriter) WithMetrics(metrics *monitoring.Metrics) *FileWriter {
	w.metrics = metrics
	return w
}

// WithPrecompress enables gzip siblings for stylesheets and client modules
func (w *FileWriter) WithPrecompress(enabled bool) *FileWriter {
	w.precompress = enabled
	return w
}

// Write writes one artifact, creating its directory when needed
func (w *FileWriter) Write(ctx context.Context, a types.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(a.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(a.Path, []byte(a.Content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.Path, err)
	}

	if w.precompress && compressible(a.Kind) {
		if err := writeGzip(a.Path+GzipExt, []byte(a.Content)); err != nil {
			return err
		}
	}

	if w.metrics != nil {
		w.metrics.RecordArtifact(string(a.Kind), len(a.Content))
	}

	w.logger.Debug("Wrote artifact",
		zap.String("artifact", string(a.Kind)),
		zap.String("path", a.Path),
		zap.Int("size", len(a.Content)),
	)
	return nil
}

func compressible(kind types.ArtifactKind) bool {
	return kind == types.ArtifactStylesheet || kind == types.ArtifactClientModule
}

func writeGzip(path string, data []byte) error {
	var buf bytes.Buffer
	gz, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return err
	}
	if _, err := gz.Write(data); err != nil {
		return fmt.Errorf("gzip failed: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("gzip failed: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Discard drops every artifact. It backs dry-run and check modes.
type Discard struct {
	logger *logging.Logger
}

// NewDiscard creates a writer that persists nothing
func NewDiscard(logger *logging.Logger) *Discard {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Discard{logger: logger.Named("artifact")}
}

// Write implements Writer
func (d *Discard) Write(ctx context.Context, a types.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.logger.Debug("Dry-run, not writing artifact",
		zap.String("artifact", string(a.Kind)),
		zap.String("path", a.Path),
	)
	return nil
}
