package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess fails the test unless gitnag exited with code 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode,
		"gitnag exited with %d, want 0.\nStdout: %s\nStderr: %s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure fails the test if gitnag exited with code 0.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"gitnag succeeded, want a non-zero exit.\nStdout: %s",
		result.Stdout)
}

// AssertStdoutContains checks stdout for a substring.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected,
		"stdout is missing %q.\nStdout: %s", expected, result.Stdout)
}

// AssertStderrContains checks stderr for a substring. Errors and
// log warnings land there.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected,
		"stderr is missing %q.\nStderr: %s", expected, result.Stderr)
}

// AssertStderrNotContains checks stderr does not carry a substring.
func AssertStderrNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stderr, unexpected,
		"stderr unexpectedly has %q.\nStderr: %s", unexpected, result.Stderr)
}

// AssertValidJSON decodes stdout into target, failing the test on bad JSON.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	err := json.Unmarshal([]byte(result.Stdout), target)
	require.NoError(tb, err, "stdout is not JSON.\nStdout: %s", result.Stdout)
}

// AssertJSONContains decodes stdout as an object and compares one top-level key.
func AssertJSONContains(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var data map[string]any
	AssertValidJSON(tb, result, &data)
	assert.Equal(tb, expected, data[key], "JSON key %q mismatch", key)
}
