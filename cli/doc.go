// Package cli contains the command line interface for fundl.
//
// # Usage
//
// Each operation on a funding document is a subcommand:
//
//	fundl check source.fundl              # validate (default command)
//	fundl fmt -w source.fundl             # canonical formatting, in place
//	fundl export -t github source.fundl   # FUNDING.yml, json, yaml, markdown
//	fundl query 'map(goals, .name)'       # expression evaluation
//	fundl view source.fundl               # terminal dashboard
//	fundl init                            # starter document
//
// Commands read from stdin when the source argument is "-" (the default),
// so documents pipe cleanly:
//
//	cat source.fundl | fundl fmt | fundl export -t github
//
// # Logging Options
//
//   - --log-level: Set minimum log level (debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//
// Logger flags take effect as early as possible during argument parsing,
// so diagnostics emitted while parsing the remaining flags already use
// the requested level and format.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//		go build -tags pprof
//
//	  - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//	    heap, mem, mutex, thread, trace)
//	  - --pprof-dir: Set profile output directory (default:
//
// ~/.cache/fundl/pprof)
//
// # Examples
//
//	# Debug logging while validating
//	fundl --log-level=debug check source.fundl
//
//	# Text format with CPU profiling
//	fundl --log-format=text --pprof-mode=cpu export -t github source.fundl
package cli
