package core

import (
	"github.com/nejtool/nej/internal/engine"
	"github.com/nejtool/nej/internal/transform"
	"github.com/nejtool/nej/internal/types"
)

// Re-export selected internal types as a stable public API surface. These
// are type aliases so external consumers can depend on a stable path; they
// can be replaced with decoupled structs later without breaking callers.
type (
	Config     = engine.Config
	Result     = engine.Result
	FileReport = types.FileReport
	Outcome    = types.Outcome
)

// Run processes the configured paths and returns per-file reports.
func Run(cfg Config) (Result, error) {
	return engine.Run(cfg)
}

// Strip removes emoji graphemes from data, returning the cleaned bytes and
// the number of graphemes removed.
func Strip(data []byte) ([]byte, int) {
	return transform.Strip(data, transform.Options{})
}

// StripPadded is Strip with removed graphemes replaced by blank runs of
// equal display width.
func StripPadded(data []byte) ([]byte, int) {
	return transform.Strip(data, transform.Options{Pad: true})
}
