package descriptor

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/logging"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/paths"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/utils"
	"github.com/saintfish/chardet"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// ErrMalformed reports a metadata document that is not well-formed XML
var ErrMalformed = errors.New("malformed descriptor")

// Property names recognized in the metadata document
const (
	PropEnabled     = "enabled"
	PropTitle       = "title"
	PropDescription = "description"
	PropIcon        = "icon"
)

var encodingDecl = regexp.MustCompile(`^\s*<\?xml[^>]*\sencoding\s*=`)

// document mirrors the metadata XML. The root element name is not fixed.
type document struct {
	XMLName       xml.Name
	Name          string     `xml:"name,attr"`
	Type          string     `xml:"type,attr"`
	Schema        string     `xml:"schema,attr"`
	Properties    []property `xml:"property"`
	Compatibility []string   `xml:"compability"`
	Mimes         []string   `xml:"mime"`
}

type property struct {
	Name     string `xml:"name,attr"`
	Language string `xml:"language,attr"`
	Value    string `xml:",chardata"`
}

// Parser reads package metadata documents
type Parser struct {
	defaultLanguage string
	logger          *logging.Logger
}

// NewParser creates a parser resolving unlabeled titles to defaultLanguage
func NewParser(defaultLanguage string, logger *logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Parser{
		defaultLanguage: defaultLanguage,
		logger:          logger.Named("descriptor"),
	}
}

// ParseFile reads and parses the descriptor at path. kind selects the
// per-kind defaults; when empty the declared type attribute is used.
func (p *Parser) ParseFile(path string, kind types.PackageKind) (*types.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}
	return p.Parse(data, path, kind)
}

// Parse parses descriptor bytes read from path
func (p *Parser) Parse(data []byte, path string, kind types.PackageKind) (*types.Descriptor, error) {
	if err := utils.ValidateSize("descriptor", data, utils.MaxDescriptorSize); err != nil {
		return nil, err
	}

	data, err := p.normalizeEncoding(data, path)
	if err != nil {
		return nil, err
	}

	var doc document
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	if kind == "" {
		kind, _ = types.ParseKind(doc.Type)
	}

	d := &types.Descriptor{
		Name:          strings.TrimSpace(doc.Name),
		ClassName:     filepath.Base(filepath.Dir(path)),
		DeclaredType:  strings.TrimSpace(doc.Type),
		Kind:          kind,
		Enabled:       true,
		Titles:        make(map[string]string),
		Descriptions:  make(map[string]string),
		Icon:          types.DefaultIcon,
		Compatibility: collect(doc.Compatibility),
		MimeTypes:     collect(doc.Mimes),
		Path:          path,
	}
	if spec, ok := kind.Spec(); ok {
		d.Title = spec.DefaultTitle
		d.Icon = spec.DefaultIcon
	}

	for _, prop := range doc.Properties {
		p.apply(d, prop)
	}

	if schema := strings.TrimSpace(doc.Schema); schema != "" {
		schemaPath := paths.SchemaPath(path, schema)
		if _, err := os.Stat(schemaPath); err == nil {
			d.SchemaPath = schemaPath
		} else {
			p.logger.Debug("UI schema not found, compiling without windows",
				zap.String("descriptor", path),
				zap.String("schema", schemaPath),
			)
		}
	}

	return d, nil
}

// apply folds one property element into the descriptor
func (p *Parser) apply(d *types.Descriptor, prop property) {
	val := strings.TrimSpace(prop.Value)
	lang := strings.TrimSpace(prop.Language)

	switch strings.TrimSpace(prop.Name) {
	case PropEnabled:
		if val == "false" {
			d.Enabled = false
		}
	case PropTitle:
		if val == "" {
			return
		}
		if lang == "" {
			lang = p.defaultLanguage
		}
		d.Titles[lang] = val
		if lang == p.defaultLanguage {
			d.Title = val
		}
	case PropDescription:
		if val == "" {
			return
		}
		if lang == "" {
			lang = p.defaultLanguage
		}
		d.Descriptions[lang] = val
		if lang == p.defaultLanguage {
			d.Description = val
		}
	case PropIcon:
		if val != "" {
			d.Icon = val
		}
	}
}

// normalizeEncoding transcodes undeclared legacy text to UTF-8. Documents
// with an encoding declaration are left to the decoder's CharsetReader.
func (p *Parser) normalizeEncoding(data []byte, path string) ([]byte, error) {
	if utils.IsUTF8(data) || encodingDecl.Match(data) {
		return data, nil
	}

	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: undetectable charset: %v", ErrMalformed, path, err)
	}

	r, err := charset.NewReaderLabel(result.Charset, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: unsupported charset %s", ErrMalformed, path, result.Charset)
	}
	converted, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	p.logger.Debug("Transcoded descriptor",
		zap.String("descriptor", path),
		zap.String("charset", result.Charset),
		zap.Int("confidence", result.Confidence),
	)
	return converted, nil
}

func collect(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
