package compiler

import (
	"time"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
)

// Outcome is the observable result of compiling one package
type Outcome struct {
	Package   string
	Kind      types.PackageKind
	Result    types.Result
	Err       error
	Artifacts []types.Artifact // rendered artifacts, also in dry-run
	Duration  time.Duration
}

// Failed reports whether the package ended in failure
func (o Outcome) Failed() bool {
	return o.Result == types.ResultFailure
}

// Succeeded reports whether no outcome failed. Disabled skips are not failures.
func Succeeded(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o.Failed() {
			return false
		}
	}
	return true
}
