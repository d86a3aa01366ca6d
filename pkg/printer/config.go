package printer

// Config is the resolved printer configuration. It is
// expected to already have been validated and defaulted — by pkg/config,
// or by any other configuration-resolution collaborator — before being
// passed to Print.
type Config struct {
	// IndentWidth is the number of spaces one indent level renders as.
	// Ignored when UseTabs is true. Default 4.
	IndentWidth int

	// UseTabs emits one tab character per indent level instead of spaces.
	// Default false.
	UseTabs bool

	// NewLineKind is one of "\r\n", "\n", "auto", or "system". Default
	// "\n". See pkg/newline for resolution rules.
	NewLineKind string

	// MaxWidth (a.k.a. lineWidth) is the soft line length target used by
	// newline-group fit measurement. Default 120.
	MaxWidth int

	// IsTesting enables extra integrity checks:
	// mismatched Start/Finish pairs, double-visited markers, and
	// conditions left unresolved at the end of the print all become fatal
	// errors instead of being silently tolerated.
	IsTesting bool
}

// DefaultConfig returns the default value for every configuration option.
func DefaultConfig() Config {
	return Config{
		IndentWidth: 4,
		UseTabs:     false,
		NewLineKind: "\n",
		MaxWidth:    120,
		IsTesting:   false,
	}
}
