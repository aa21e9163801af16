package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/compiler"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/id"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/utils"
	"github.com/bytedance/sonic"
	"github.com/ddddddO/gtree"
)

// Report summarizes one compiler run
type Report struct {
	BuildID   id.BuildID          `json:"build_id"`
	StartedAt time.Time           `json:"started_at"`
	DryRun    bool                `json:"dry_run"`
	Checksum  utils.HashAlgorithm `json:"checksum"`
	Packages  []Package           `json:"packages"`
	Summary   Summary             `json:"summary"`

	hasher *utils.Hasher
}

// Package is the report entry of one package
type Package struct {
	Name      string     `json:"name"`
	Kind      string     `json:"kind,omitempty"`
	Result    string     `json:"result"`
	Error     string     `json:"error,omitempty"`
	Duration  float64    `json:"duration_seconds"`
	Artifacts []Artifact `json:"artifacts,omitempty"`
}

// Artifact is the report entry of one rendered artifact
type Artifact struct {
	Kind string `json:"kind"`
	Path string `json:"path"`
	Size int    `json:"size"`
	Hash string `json:"hash"`
}

// Summary counts package results
type Summary struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Skipped int `json:"skipped"`
}

// New starts a report for a run
func New(buildID id.BuildID, startedAt time.Time, dryRun bool) *Report {
	return &Report{
		BuildID:   buildID,
		StartedAt: startedAt,
		DryRun:    dryRun,
		Checksum:  utils.SHA256,
		Packages:  []Package{},
		hasher:    utils.DefaultHasher(),
	}
}

// WithHasher sets the artifact checksum algorithm
func (r *Report) WithHasher(hasher *utils.Hasher) *Report {
	r.hasher = hasher
	r.Checksum = hasher.Algorithm()
	return r
}

// Add records package outcomes in order
func (r *Report) Add(outcomes ...compiler.Outcome) {
	for _, o := range outcomes {
		entry := Package{
			Name:     o.Package,
			Kind:     string(o.Kind),
			Result:   string(o.Result),
			Duration: o.Duration.Seconds(),
		}
		if o.Err != nil {
			entry.Error = o.Err.Error()
		}
		for _, a := range o.Artifacts {
			entry.Artifacts = append(entry.Artifacts, Artifact{
				Kind: string(a.Kind),
				Path: a.Path,
				Size: len(a.Content),
				Hash: r.hasher.HashString(a.Content),
			})
		}

		switch o.Result {
		case types.ResultSuccess:
			r.Summary.Success++
		case types.ResultSkippedDisabled:
			r.Summary.Skipped++
		default:
			r.Summary.Failure++
		}
		r.Packages = append(r.Packages, entry)
	}
}

// JSON encodes the report
func (r *Report) JSON() ([]byte, error) {
	return sonic.MarshalIndent(r, "", "  ")
}

// WriteJSON writes the report to path, creating its directory
func (r *Report) WriteJSON(path string) error {
	data, err := r.JSON()
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// PrintTree writes the report as a tree: build, packages, artifacts
func (r *Report) PrintTree(w io.Writer) error {
	root := gtree.NewRoot(fmt.Sprintf("%s (%d ok, %d failed, %d skipped)",
		r.BuildID, r.Summary.Success, r.Summary.Failure, r.Summary.Skipped))

	for _, p := range r.Packages {
		label := fmt.Sprintf("%s [%s]", p.Name, p.Result)
		if p.Kind != "" {
			label = fmt.Sprintf("%s %s [%s]", p.Name, p.Kind, p.Result)
		}
		node := root.Add(label)
		if p.Error != "" {
			node.Add("error: " + p.Error)
		}
		for _, a := range p.Artifacts {
			node.Add(fmt.Sprintf("%s %s (%d bytes, %s)", a.Kind, filepath.Base(a.Path), a.Size, utils.ShortHash(a.Hash)))
		}
	}

	return gtree.OutputFromRoot(w, root)
}
