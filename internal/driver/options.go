package driver

import (
	"dcfilter/internal/observ"
)

// DefaultExt is the extension of filter files picked up by TokenizeDir.
const DefaultExt = ".dcf"

// Options configures the driver.
type Options struct {
	MaxDiagnostics int
	// Resilient keeps lexing after an error: the bad fragment becomes an
	// Invalid token and scanning restarts right after it.
	Resilient    bool
	NormalizeNFC bool
	// Jobs limits parallel workers in TokenizeDir; <= 0 means GOMAXPROCS.
	Jobs int
	// Ext selects files in TokenizeDir; empty means DefaultExt.
	Ext string
	// Timer, when set, receives load/lex phases and a timing diagnostic
	// is added to every result bag.
	Timer *observ.Timer
}

func (o Options) ext() string {
	if o.Ext == "" {
		return DefaultExt
	}
	return o.Ext
}
