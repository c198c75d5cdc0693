// Package trace provides lightweight tracing for dcfilter runs.
//
// Tracing tracks the driver, the lexing pass and per-file work so that slow
// inputs and stalls in directory checks can be diagnosed.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	dcfilter check --trace=- --trace-level=detail ./filters
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only failure points
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Per-file events
//   - LevelDebug: Everything including single tokens
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "lex", parentID)
//	defer span.End("")
package trace
