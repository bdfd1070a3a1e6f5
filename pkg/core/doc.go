// Package core provides a small, stable facade over nej's internal engine
// for external integrations. It deliberately re-exports a narrow API surface
// so other tools can depend on a stable import path without reaching into
// internal packages.
//
// Example:
//
//	out, removed := core.Strip([]byte("hi \U0001F44B"))
//	_ = out
//	_ = removed
//
//	res, err := core.Run(core.Config{Paths: []string{"README.md"}})
//	if err != nil { /* handle */ }
//	_ = core.MarshalReports(os.Stdout, res.Reports)
package core
