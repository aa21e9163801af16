package window

import (
	"fmt"
	"strings"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/paths"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
)

// TypeProperty is the structural property every window must carry
const TypeProperty = "type"

// Validate checks the window model contract: at least one window, unique
// identifier-safe ids, a properties map holding a type, and a signals map
// (possibly empty) of non-empty handler names.
func Validate(windows []types.Window) error {
	if len(windows) == 0 {
		return fmt.Errorf("%w: schema defines no windows", ErrInvalidModel)
	}

	seen := make(map[string]bool, len(windows))
	for i, w := range windows {
		if !paths.IsIdentifier(w.ID) {
			return fmt.Errorf("%w: window %d has invalid id %q", ErrInvalidModel, i, w.ID)
		}
		if seen[w.ID] {
			return fmt.Errorf("%w: duplicate window id %q", ErrInvalidModel, w.ID)
		}
		seen[w.ID] = true

		if w.Properties == nil {
			return fmt.Errorf("%w: window %q has no properties", ErrInvalidModel, w.ID)
		}
		if strings.TrimSpace(w.Property(TypeProperty)) == "" {
			return fmt.Errorf("%w: window %q has no %s property", ErrInvalidModel, w.ID, TypeProperty)
		}
		if w.Signals == nil {
			return fmt.Errorf("%w: window %q has no signals", ErrInvalidModel, w.ID)
		}
		for widget, signals := range w.Signals {
			if strings.TrimSpace(widget) == "" {
				return fmt.Errorf("%w: window %q binds an unnamed widget", ErrInvalidModel, w.ID)
			}
			for signal, handler := range signals {
				if strings.TrimSpace(signal) == "" || strings.TrimSpace(handler) == "" {
					return fmt.Errorf("%w: window %q widget %q has an empty signal binding",
						ErrInvalidModel, w.ID, widget)
				}
			}
		}
	}
	return nil
}
