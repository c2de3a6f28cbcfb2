// Package builder provides Expression, a fluent builder that assembles a
// regular expression from semantically named steps instead of raw syntax.
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
// The package offers the following key components:
//
//   - Construction:
//     – New:                empty buffer.
//     – FromString:         buffer seeded with caller text.
//   - Primitives:
//     – Add:                append text verbatim (the only growth primitive).
//     – Replace:            plain-text substitution over the whole buffer.
//     – OpenClass/CloseClass, OpenGroup/OpenCapturingGroup/CloseGroup.
//   - Semantic operations:
//     – Any/AnyOf, Anything, AnythingBut, Something, SomethingBut.
//     – Find/Then, Maybe, Or, Capture, Word, Range.
//     – StartOfLine, EndOfLine, LineBreak/Br, Tab.
//   - Finalization:
//     – Source/Raw/Value/String: current buffer.
//     – Compile/Regex/MustCompile: hand the buffer to regexp.Compile (or the
//       function given via WithCompileFunc).
//
// Guarantees:
//
//   - Chaining: every mutating method returns the same *Expression.
//   - Totality: no operation fails or panics; nothing is escaped or validated.
//   - Transparency: Compile returns the collaborator's error unmodified.
//
// Non-guarantees:
//
//   - Misuse (Or with no left-hand side, inverted Range bounds, a Replace that
//     cuts through a group) is not detected. It shows up as a Compile error,
//     or not at all if the result is still valid syntax.
//   - Expression has no internal locking.
package builder
