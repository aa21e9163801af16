package sandbox

// Config defines syntax checker configuration
type Config struct {
	MaxSourceKB int  // Largest script accepted, 0 = unlimited
	Strict      bool // Parse as strict mode code
}

// Checker verifies generated scripts without running them
type Checker interface {
	CheckSyntax(name, source string) error
}

// Default configuration
func DefaultConfig() Config {
	return Config{
		MaxSourceKB: 1024,
		Strict:      false,
	}
}
