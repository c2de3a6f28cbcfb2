// SPDX-License-Identifier: MIT
// Package: verex/builder
//
// options.go — functional options for New and FromString.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builder operations themselves never panic and never fail.
//   • Options only affect the compilation handoff, never the buffer.

package builder

// Option customizes an Expression at construction time.
type Option func(*builderConfig)

// WithCompileFunc replaces the compilation collaborator, e.g. with
// regexp.CompilePOSIX or a caching wrapper. Whatever fn returns is passed
// back from Compile unmodified, so a caching fn may hand the same matcher to
// many expressions. Panics on nil.
func WithCompileFunc(fn CompileFunc) Option {
	if fn == nil {
		panic("builder: WithCompileFunc(nil)")
	}
	return func(c *builderConfig) {
		c.compile = fn
	}
}
