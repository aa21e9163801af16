// Package testutil provides fixtures and mocks for compiler tests.
package testutil

import (
	"context"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/paths"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Property is one property element of a descriptor fixture.
type Property struct {
	Name     string `xml:"name,attr"`
	Language string `xml:"language,attr,omitempty"`
	Value    string `xml:",chardata"`
}

// Descriptor is a metadata.xml fixture.
type Descriptor struct {
	XMLName       xml.Name   `xml:"application"`
	Name          string     `xml:"name,attr"`
	Type          string     `xml:"type,attr,omitempty"`
	Schema        string     `xml:"schema,attr,omitempty"`
	Properties    []Property `xml:"property"`
	Compatibility []string   `xml:"compability"`
	Mimes         []string   `xml:"mime"`
}

// Title adds an untagged title property.
func (d Descriptor) Title(value string) Descriptor {
	d.Properties = append(d.Properties, Property{Name: "title", Value: value})
	return d
}

// Disabled adds enabled=false.
func (d Descriptor) Disabled() Descriptor {
	d.Properties = append(d.Properties, Property{Name: "enabled", Value: "false"})
	return d
}

// XML serializes the fixture.
func (d Descriptor) XML(t *testing.T) []byte {
	t.Helper()
	data, err := xml.MarshalIndent(d, "", "  ")
	require.NoError(t, err)
	return append([]byte(xml.Header), data...)
}

// WritePackage writes root/name/metadata.xml and returns the package directory.
func WritePackage(t *testing.T, root, name string, d Descriptor) string {
	t.Helper()
	pkg := paths.PackagePath(root, name)
	require.NoError(t, os.MkdirAll(pkg.Dir(), 0o755))
	require.NoError(t, os.WriteFile(pkg.Descriptor(), d.XML(t), 0o644))
	return pkg.Dir()
}

// WriteContract writes a JSON window contract to dir/file.
func WriteContract(t *testing.T, dir, file string, windows []types.Window) string {
	t.Helper()
	data, err := sonic.Marshal(map[string]interface{}{"windows": windows})
	require.NoError(t, err)

	p := filepath.Join(dir, file)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

// NewWindow creates a window fixture with empty signal bindings.
func NewWindow(id, kind string) types.Window {
	return types.Window{
		ID:         id,
		Properties: map[string]interface{}{"type": kind},
		Signals:    map[string]map[string]string{},
	}
}

// MockWriter is a mock implementation of artifact.Writer for testing.
type MockWriter struct {
	mock.Mock
}

// Write mocks the Write method.
func (m *MockWriter) Write(ctx context.Context, a types.Artifact) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

// NewMockWriter creates a mock writer that accepts every artifact.
func NewMockWriter(t *testing.T) *MockWriter {
	t.Helper()
	m := new(MockWriter)
	m.On("Write", mock.Anything, mock.Anything).Return(nil).Maybe()
	return m
}

// MockSource is a mock implementation of window.Source for testing.
type MockSource struct {
	mock.Mock
}

// Windows mocks the Windows method.
func (m *MockSource) Windows(ctx context.Context, schemaPath string) ([]types.Window, error) {
	args := m.Called(ctx, schemaPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Window), args.Error(1)
}
