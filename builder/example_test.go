package builder_test

import (
	"fmt"
	"regexp"

	"github.com/katalvlaran/verex/builder"
)

// ExampleExpression builds a URL matcher step by step.
func ExampleExpression() {
	v := builder.New().
		StartOfLine().
		Then("http").
		Maybe("s").
		Then("://").
		Maybe("www.").
		AnythingBut(" ").
		EndOfLine()

	re := v.MustCompile()
	fmt.Println(v.Source())
	fmt.Println(re.MatchString("https://www.google.com"))
	fmt.Println(re.MatchString("mailto:someone"))

	// Output:
	// ^(?:http)(?:s)?(?:://)(?:www.)?(?:[^ ]*)$
	// true
	// false
}

// ExampleExpression_Or shows the alternation helper, including the
// dangling form.
func ExampleExpression_Or() {
	fmt.Println(builder.New().Find("cat").Or("dog").Source())
	fmt.Println(builder.New().Find("cat").Or("").Source())

	// Output:
	// (?:cat)|(?:dog)
	// (?:cat)|
}

// ExampleExpression_Range builds a hex-digit class.
func ExampleExpression_Range() {
	v := builder.New().Range(
		builder.CharRange{From: '0', To: '9'},
		builder.CharRange{From: 'a', To: 'f'},
	)
	fmt.Println(v)

	// Output:
	// [0-9a-f]
}

// ExampleExpression_Capture extracts a key/value pair. Literal text is
// escaped by the caller.
func ExampleExpression_Capture() {
	re, err := builder.New().
		StartOfLine().
		Capture(`\w+`).
		Then(regexp.QuoteMeta(" = ")).
		Something().
		Compile()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%q\n", re.FindStringSubmatch("timeout = 30s"))

	// Output:
	// ["timeout = 30s" "timeout" "30s"]
}

// ExampleExpression_Replace rewrites the buffer as plain text.
func ExampleExpression_Replace() {
	fmt.Println(builder.FromString("foobar").Replace("r", "z").Source())

	// Output:
	// foobaz
}
