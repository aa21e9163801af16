package window

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/logging"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/utils"
	"github.com/bytedance/sonic"
	"github.com/gabriel-vasile/mimetype"
	"github.com/goccy/go-yaml"
	"go.uber.org/zap"
)

var (
	// ErrInvalidModel reports a window model that breaks the contract
	ErrInvalidModel = errors.New("invalid window model")

	// ErrUnsupportedSchema reports a schema file this source cannot read
	ErrUnsupportedSchema = errors.New("unsupported schema format")
)

// Source produces the ordered window model of a package's UI schema.
// The first window returned is the root window.
type Source interface {
	Windows(ctx context.Context, schemaPath string) ([]types.Window, error)
}

// contract is the serialized window model
type contract struct {
	Windows []types.Window `json:"windows" yaml:"windows"`
}

// FileSource reads window contracts serialized as JSON or YAML
type FileSource struct {
	logger *logging.Logger
}

// NewFileSource creates a file-backed window source
func NewFileSource(logger *logging.Logger) *FileSource {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &FileSource{logger: logger.Named("window")}
}

// Windows reads, decodes and validates the contract at schemaPath
func (s *FileSource) Windows(ctx context.Context, schemaPath string) ([]types.Window, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	windows, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", schemaPath, err)
	}

	s.logger.Debug("Loaded window model",
		zap.String("schema", schemaPath),
		zap.Int("windows", len(windows)),
	)
	return windows, nil
}

// Decode parses a serialized contract, choosing the codec by content
func Decode(data []byte) ([]types.Window, error) {
	if err := utils.ValidateSize("schema", data, utils.MaxSchemaSize); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}

	var doc contract
	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is("application/json"):
		if err := sonic.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
		}
	case mtype.Is("text/xml"), mtype.Is("application/xml"):
		// Markup schemas need the external schema parser
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSchema, mtype.String())
	case isText(mtype):
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSchema, mtype.String())
	}

	if err := Validate(doc.Windows); err != nil {
		return nil, err
	}
	return doc.Windows, nil
}

// Static serves a fixed window model regardless of schema path
type Static []types.Window

// Windows implements Source
func (s Static) Windows(ctx context.Context, _ string) ([]types.Window, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// isText reports whether the detected type is plain text or derives from it
func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
