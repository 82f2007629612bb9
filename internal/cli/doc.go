// Package cli wires together the Cobra command for the cmpatch binary.
//
// It binds the positional object specs and flags, loads configuration,
// validates the request, runs cm diff, and maps every outcome to a process
// exit code. It is the only place that decides whether a run stops.
package cli
