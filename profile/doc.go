// Package profile provides optional runtime profiling for the typeset
// application.
//
// Profiling integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When built without the tag (the default), all operations are no-ops
// with zero runtime overhead.
//
// Supported modes when built with the tag: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, trace. Use [Modes] to retrieve the
// list programmatically. Profile files are written to the configured
// directory with names matching the mode (e.g. cpu.pprof):
//
//	go build -tags pprof .
//	typeset --pprof-mode=cpu --pprof-dir=/tmp/profiles render '0' '"x"'
//	go tool pprof /tmp/profiles/cpu.pprof
//
// Building with the tag also imports [net/http/pprof], registering its
// HTTP handlers for applications that start a debug server.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
