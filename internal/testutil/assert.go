// Package testutil provides shared test utilities for the board view packages.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		report(t, fmt.Sprintf("mismatch (-want +got):\n%s", diff), msgAndArgs...)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		report(t, fmt.Sprintf("unexpected error: %v", err), msgAndArgs...)
	}
}

// AssertError fails if err is nil when an error was expected.
func AssertError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		report(t, "expected error but got nil", msgAndArgs...)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		report(t, fmt.Sprintf("%q does not contain %q", got, substr), msgAndArgs...)
	}
}

// AssertNotContains fails if substr is found in got.
func AssertNotContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if strings.Contains(got, substr) {
		report(t, fmt.Sprintf("%q should not contain %q", got, substr), msgAndArgs...)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		report(t, "expected true but got false", msgAndArgs...)
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		report(t, "expected false but got true", msgAndArgs...)
	}
}

// AssertPanics fails if fn returns without panicking.
func AssertPanics(t testing.TB, fn func(), msgAndArgs ...interface{}) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			report(t, "expected panic", msgAndArgs...)
		}
	}()
	fn()
}

func report(t testing.TB, failure string, msgAndArgs ...interface{}) {
	t.Helper()
	if msg := formatMessage(msgAndArgs...); msg != "" {
		t.Errorf("%s: %s", msg, failure)
		return
	}
	t.Error(failure)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
