package types

// ArtifactKind identifies one of the rendered output files
type ArtifactKind string

const (
	ArtifactStylesheet   ArtifactKind = "stylesheet"
	ArtifactBackendStub  ArtifactKind = "backend-stub"
	ArtifactClientModule ArtifactKind = "client-module"
	ArtifactMarkup       ArtifactKind = "markup"
)

// Extension returns the file extension used for the artifact kind
func (k ArtifactKind) Extension() string {
	switch k {
	case ArtifactStylesheet:
		return ".css"
	case ArtifactBackendStub:
		return ".class.php"
	case ArtifactClientModule:
		return ".js"
	case ArtifactMarkup:
		return ".html"
	}
	return ""
}

// ArtifactKinds lists every artifact kind in write order
func ArtifactKinds() []ArtifactKind {
	return []ArtifactKind{ArtifactBackendStub, ArtifactStylesheet, ArtifactClientModule, ArtifactMarkup}
}

// Artifact is one rendered output file
type Artifact struct {
	Kind    ArtifactKind `json:"kind"`
	Path    string       `json:"path"`
	Content string       `json:"-"`
}

// Result is the outcome code of compiling one package
type Result string

const (
	ResultSuccess         Result = "success"
	ResultFailure         Result = "failure"
	ResultSkippedDisabled Result = "skipped-disabled"
)
