package render

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
)

//go:embed templates/*
var embedded embed.FS

// Template file names inside a template directory
const (
	FileStylesheet  = "compiler.css"
	FileBackendStub = "compiler.php"
	FileApplication = "compiler.js"
	FilePanelItem   = "compiler.panelitem.js"
	FileService     = "compiler.service.js"
	FileWindow      = "compiler.window.js"
)

// TemplateSet holds the template text of one run. It is loaded once and
// never modified, so compilations may share it freely.
type TemplateSet struct {
	Stylesheet  string
	BackendStub string
	Application string
	PanelItem   string
	Service     string
	Window      string
}

// DefaultTemplates returns the templates embedded in the binary
func DefaultTemplates() (*TemplateSet, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, err
	}
	return LoadTemplates(sub)
}

// LoadTemplatesDir reads a template directory from disk
func LoadTemplatesDir(dir string) (*TemplateSet, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open templates: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates path %s is not a directory", dir)
	}
	return LoadTemplates(os.DirFS(dir))
}

// LoadTemplates reads every template file from fsys
func LoadTemplates(fsys fs.FS) (*TemplateSet, error) {
	set := &TemplateSet{}
	files := []struct {
		name string
		dst  *string
	}{
		{FileStylesheet, &set.Stylesheet},
		{FileBackendStub, &set.BackendStub},
		{FileApplication, &set.Application},
		{FilePanelItem, &set.PanelItem},
		{FileService, &set.Service},
		{FileWindow, &set.Window},
	}

	for _, f := range files {
		data, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", f.name, err)
		}
		*f.dst = string(data)
	}
	return set, nil
}

// Client returns the client module template for a package kind
func (s *TemplateSet) Client(kind types.PackageKind) (string, error) {
	switch kind {
	case types.KindApplication, types.KindSystem:
		return s.Application, nil
	case types.KindPanelItem:
		return s.PanelItem, nil
	case types.KindService:
		return s.Service, nil
	}
	return "", fmt.Errorf("no client template for kind %q", kind)
}
