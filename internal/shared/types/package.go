package types

import "strings"

// PackageKind represents the type of package
type PackageKind string

const (
	KindApplication PackageKind = "Application"
	KindSystem      PackageKind = "System"
	KindPanelItem   PackageKind = "PanelItem"
	KindService     PackageKind = "Service"
)

// Default icon for packages that do not declare one
const DefaultIcon = "emblems/emblem-unreadable.png"

// KindSpec holds the per-kind compilation settings
type KindSpec struct {
	Kind         PackageKind
	Label        string // Backend base class and %PACKAGETYPE% value
	DefaultTitle string
	DefaultIcon  string
	UIBearing    bool // Reads the UI schema and emits a markup artifact
}

var kindSpecs = map[PackageKind]KindSpec{
	KindApplication: {
		Kind:         KindApplication,
		Label:        "Application",
		DefaultTitle: "Application",
		DefaultIcon:  DefaultIcon,
		UIBearing:    true,
	},
	KindSystem: {
		Kind:         KindSystem,
		Label:        "Application",
		DefaultTitle: "Application",
		DefaultIcon:  DefaultIcon,
		UIBearing:    true,
	},
	KindPanelItem: {
		Kind:         KindPanelItem,
		Label:        "PanelItem",
		DefaultTitle: "PanelItem",
		DefaultIcon:  DefaultIcon,
	},
	KindService: {
		Kind:         KindService,
		Label:        "BackgroundService",
		DefaultTitle: "BackgroundService",
		DefaultIcon:  DefaultIcon,
	},
}

// Spec returns the compilation settings for the kind
func (k PackageKind) Spec() (KindSpec, bool) {
	spec, ok := kindSpecs[k]
	return spec, ok
}

// Valid reports whether the kind is one of the known variants
func (k PackageKind) Valid() bool {
	_, ok := kindSpecs[k]
	return ok
}

func (k PackageKind) String() string {
	return string(k)
}

// ParseKind maps a declared descriptor type attribute to a kind
func ParseKind(declared string) (PackageKind, bool) {
	switch strings.TrimSpace(declared) {
	case "Application":
		return KindApplication, true
	case "System":
		return KindSystem, true
	case "PanelItem":
		return KindPanelItem, true
	case "Service", "BackgroundService":
		return KindService, true
	}
	return "", false
}

// KindFromName infers the kind from a package directory name prefix
func KindFromName(name string) (PackageKind, bool) {
	switch {
	case strings.HasPrefix(name, "Application"):
		return KindApplication, true
	case strings.HasPrefix(name, "System"):
		return KindSystem, true
	case strings.HasPrefix(name, "PanelItem"):
		return KindPanelItem, true
	case strings.HasPrefix(name, "Service"):
		return KindService, true
	}
	return "", false
}

// Descriptor is the parsed package metadata document
type Descriptor struct {
	Name          string            `json:"name"`       // name attribute of the root element
	ClassName     string            `json:"class_name"` // package directory name
	DeclaredType  string            `json:"declared_type,omitempty"`
	Kind          PackageKind       `json:"kind"`
	Enabled       bool              `json:"enabled"`
	Title         string            `json:"title"` // resolved primary title
	Titles        map[string]string `json:"titles"`
	Description   string            `json:"description,omitempty"`
	Descriptions  map[string]string `json:"descriptions,omitempty"`
	Icon          string            `json:"icon"`
	Compatibility []string          `json:"compatibility"`
	MimeTypes     []string          `json:"mime_types"`
	SchemaPath    string            `json:"schema_path,omitempty"` // empty when the package has no UI schema
	Path          string            `json:"path"`
}

// HasSchema reports whether a UI schema was found for the package
func (d *Descriptor) HasSchema() bool {
	return d.SchemaPath != ""
}
