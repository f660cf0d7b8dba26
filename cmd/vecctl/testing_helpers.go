package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// captureOutput captures command output while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := stdout
	var buf bytes.Buffer
	stdout = &buf
	t.Cleanup(func() { stdout = orig })

	err := fn()
	stdout = orig
	return buf.String(), err
}

// withJSON enables --json for the duration of the test
func withJSON(t *testing.T) {
	t.Helper()
	jsonOut = true
	t.Cleanup(func() { jsonOut = false })
}

// assertJSON checks that output is valid JSON and decodes it into v
func assertJSON(t *testing.T, output string, v interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(output), v); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
