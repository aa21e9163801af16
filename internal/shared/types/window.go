package types

// Window is one window of a package's UI schema, as produced by the
// schema parser. Windows are kept in schema order; the first one is the
// root window.
type Window struct {
	ID         string                       `json:"id" yaml:"id"`
	Properties map[string]interface{}       `json:"properties" yaml:"properties"`
	Signals    map[string]map[string]string `json:"signals" yaml:"signals"` // widget -> signal type -> handler base name
	Content    string                       `json:"content" yaml:"content"`
}

// Property returns a window property as a string, or "" when unset
func (w *Window) Property(name string) string {
	if w.Properties == nil {
		return ""
	}
	s, _ := w.Properties[name].(string)
	return s
}

// SignalBinding is a resolved widget signal
type SignalBinding struct {
	Widget  string `json:"widget"`
	Signal  string `json:"signal"`
	Handler string `json:"handler"` // normalized handler name
}
