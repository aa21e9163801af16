package codegen

import "strings"

// HandlerPrefix marks every generated handler method
const HandlerPrefix = "Event"

// Signal types with dedicated bindings
const (
	SignalFileSet       = "file-set"
	SignalInputActivate = "input-activate"
)

// NormalizeHandler prefixes a handler base name with HandlerPrefix unless
// it already carries it. Normalizing twice equals normalizing once.
func NormalizeHandler(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, HandlerPrefix) {
		return name
	}
	return HandlerPrefix + name
}
