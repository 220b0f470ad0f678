package ui

// Unicode symbols for status output.
const (
	SymbolSuccess = "✓" // Operation completed
	SymbolFail    = "✗" // Operation failed
	SymbolWarning = "⚠" // Something needs attention
	SymbolBullet  = "•" // List item
)
