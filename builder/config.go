// SPDX-License-Identifier: MIT
// Package: verex/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for compile-time knobs.
//   • It never influences the text an operation appends; it only selects how
//     the finished buffer is handed to the compilation collaborator.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • compile = regexp.Compile

package builder

import (
	"regexp"
)

// CompileFunc turns a finished pattern into a matcher. regexp.Compile and
// regexp.CompilePOSIX both satisfy it.
type CompileFunc func(pattern string) (*regexp.Regexp, error)

// builderConfig aggregates the knobs used at compile time.
// It is held by VALUE inside Expression and never mutated after construction.
type builderConfig struct {
	// Collaborator that receives the buffer on Compile.
	compile CompileFunc
}

// defaultCompile is the conventional Go engine.
var defaultCompile CompileFunc = regexp.Compile

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		compile: defaultCompile,
	}

	// Last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
