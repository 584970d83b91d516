package constant

import "time"

// Frame Loop Timing
const (
	// StartupKeyGuard suppresses pre-buffered keypresses right after launch
	// so the launch Enter does not collapse the fullscreen immediately
	StartupKeyGuard = 250 * time.Millisecond
)

// Viewport Limits
const (
	// MinWidth is the minimum usable terminal width in cells
	MinWidth = 40

	// MinHeight is the minimum usable terminal height in rows
	MinHeight = 10
)

// Resonance constants of the recursive field
const (
	Phi          = 1.618033988749895
	EConst       = 2.718281828459045
	SchumannBase = 7.83
	Resonance    = 31.4
)
