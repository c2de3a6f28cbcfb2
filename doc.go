// Package verex builds regular expressions from readable, chained steps
// ("start of line, then http, maybe s, anything but a space") instead of raw
// pattern syntax.
//
// What is in the box?
//
//	builder/  — Expression: the fluent builder, its options, and the handoff
//	            to regexp for compilation
//	examples/ — a runnable program that assembles and uses a few patterns
//
// The builder is a pure string-assembly façade: it never parses, validates
// or optimizes what it emits. Anything malformed is reported by regexp when
// the pattern is compiled.
//
// Quick example:
//
//	re, err := builder.New().
//		StartOfLine().
//		Then("http").
//		Maybe("s").
//		Then("://").
//		AnythingBut(" ").
//		EndOfLine().
//		Compile()
//
//	go get github.com/katalvlaran/verex/builder
package verex
