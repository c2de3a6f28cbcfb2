// Package builder contains unit tests for the configuration primitives
// (builderConfig and Option) to ensure correct application and override behavior.
package builder

import (
	"errors"
	"reflect"
	"regexp"
	"testing"
)

// TestDefaultConfig verifies the deterministic defaults.
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if reflect.ValueOf(cfg.compile).Pointer() != reflect.ValueOf(regexp.Compile).Pointer() {
		t.Errorf("default compile: expected regexp.Compile")
	}
}

// TestCompileFuncOptions verifies that options are applied in order.
func TestCompileFuncOptions(t *testing.T) {
	t.Parallel()

	errA := errors.New("a")
	errB := errors.New("b")
	fnA := func(string) (*regexp.Regexp, error) { return nil, errA }
	fnB := func(string) (*regexp.Regexp, error) { return nil, errB }

	// last option wins
	cfg := newBuilderConfig(WithCompileFunc(fnA), WithCompileFunc(fnB))
	if _, err := cfg.compile(""); err != errB {
		t.Errorf("WithCompileFunc override: expected %v, got %v", errB, err)
	}

	// a single option sticks
	cfg = newBuilderConfig(WithCompileFunc(fnA))
	if _, err := cfg.compile(""); err != errA {
		t.Errorf("WithCompileFunc: expected %v, got %v", errA, err)
	}
}

// TestOptionsDoNotTouchBuffer: configuration never changes emitted text.
func TestOptionsDoNotTouchBuffer(t *testing.T) {
	t.Parallel()

	plain := New().Find("a").Or("b").Source()
	tuned := New(WithCompileFunc(regexp.CompilePOSIX)).Find("a").Or("b").Source()
	if plain != tuned {
		t.Errorf("options changed buffer: %q vs %q", plain, tuned)
	}
}
