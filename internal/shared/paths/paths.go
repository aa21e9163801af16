package paths

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
)

// Fixed names inside the package and build trees
const (
	// DescriptorFile is the metadata document every package directory carries
	DescriptorFile = "metadata.xml"

	// AppsDir is the build subdirectory receiving compiled artifacts
	AppsDir = "apps"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Package returns paths for a package source directory
type Package struct {
	Root string
	Name string
}

// Dir returns the package directory
func (p Package) Dir() string {
	return filepath.Join(p.Root, p.Name)
}

// Descriptor returns the metadata document path
func (p Package) Descriptor() string {
	return filepath.Join(p.Root, p.Name, DescriptorFile)
}

// PackagePath returns paths for a named package under root
func PackagePath(root, name string) Package {
	return Package{Root: root, Name: name}
}

// SchemaPath resolves a schema reference relative to the descriptor's directory
func SchemaPath(descriptorPath, schema string) string {
	if schema == "" {
		return ""
	}
	if filepath.IsAbs(schema) {
		return schema
	}
	return filepath.Join(filepath.Dir(descriptorPath), schema)
}

// Build returns paths inside the build output tree
type Build struct {
	Root string
}

// AppsDir returns the directory receiving compiled artifacts
func (b Build) AppsDir() string {
	return filepath.Join(b.Root, AppsDir)
}

// Artifact returns the output path of one artifact: <root>/apps/<className><ext>
func (b Build) Artifact(className string, kind types.ArtifactKind) string {
	return filepath.Join(b.Root, AppsDir, className+kind.Extension())
}

// BuildPath returns paths for a build root
func BuildPath(root string) Build {
	return Build{Root: root}
}

// ClassNameOf returns the class name and kind of a build artifact file name.
// ok is false when the file is not a compiler artifact.
func ClassNameOf(fileName string) (string, types.ArtifactKind, bool) {
	base := filepath.Base(fileName)
	// Longest extension first so ".class.php" wins over ".php" lookalikes
	for _, kind := range types.ArtifactKinds() {
		ext := kind.Extension()
		if strings.HasSuffix(base, ext) && len(base) > len(ext) {
			return strings.TrimSuffix(base, ext), kind, true
		}
	}
	return "", "", false
}

// IsIdentifier reports whether s can be used verbatim as a script identifier
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// ValidatePackageName checks if a package name is valid for path and class construction
func ValidatePackageName(name string) error {
	if name == "" {
		return fmt.Errorf("package name cannot be empty")
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("package name cannot be an absolute path")
	}
	if filepath.Clean(name) != name || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("package name contains invalid path components")
	}
	if !IsIdentifier(name) {
		return fmt.Errorf("package name %q is not a valid class name", name)
	}
	return nil
}
