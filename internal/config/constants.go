// Package config holds process-wide constants and the optional project
// config file, in the style of funvibe-funxy/internal/config/constants.go
// (config.IsTestMode, config.SourceFileExtensions).
package config

// IsTestMode is set by test harnesses to normalize unstable output
// (e.g. generated inference-variable names) the way the teacher's
// typesystem.TVar.String does under config.IsTestMode.
var IsTestMode = false

// SourceFileExt is the canonical extension for this language's source files.
const SourceFileExt = ".rdx"

// SourceFileExtensions lists every recognized source extension.
var SourceFileExtensions = []string{".rdx", ".radix"}

// HasSourceExt reports whether path ends in a recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// Target names accepted by the `emit` CLI command (spec.md §6).
const (
	TargetCanonical  = "canonical"
	TargetSystems    = "rust"
	TargetStructural = "ts"
)

// ValidTargets lists every target name `emit -t` accepts.
var ValidTargets = []string{TargetCanonical, TargetSystems, TargetStructural}

// IsValidTarget reports whether name is a recognized emit target.
func IsValidTarget(name string) bool {
	for _, t := range ValidTargets {
		if t == name {
			return true
		}
	}
	return false
}
