package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveDuplicateStrings(t *testing.T) {
	assert.Equal(t, []string{"IC 5", "IR 15"}, RemoveDuplicateStrings([]string{"IC 5", "", "IR 15", "IC 5", "B 1"}, []string{"B 1"}))
	assert.Nil(t, RemoveDuplicateStrings(nil, nil))
}

func TestTrimString(t *testing.T) {
	tests := []struct {
		input    string
		length   int
		expected string
	}{
		{input: "Bern", length: 10, expected: "Bern"},
		{input: "Bern", length: 4, expected: "Bern"},
		{input: "Lausanne", length: 5, expected: "Laus…"},
		{input: "Genève Aéroport", length: 7, expected: "Genève…"},
		{input: "Zürich", length: 1, expected: "Z"},
		{input: "Chur", length: 0, expected: ""},
		{input: "Chur", length: -3, expected: ""},
		{input: "", length: -1, expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, TrimString(tc.input, tc.length))
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:32", FormatClock("2024-05-01T08:32:00+02:00"))
	assert.Equal(t, "23:05", FormatClock("2024-05-01T23:05:00Z"))
	assert.Equal(t, "soon", FormatClock("soon"))
	assert.Equal(t, "", FormatClock(""))
}

func TestEnvironmentFlag(t *testing.T) {
	env := map[string]string{"SBB_MCP_DEBUG": "yes", "SBB_MCP_LOG_FORMAT": "JSON"}

	assert.True(t, EnvironmentFlag(env, "SBB_MCP_DEBUG", "YES"))
	assert.True(t, EnvironmentFlag(env, "SBB_MCP_LOG_FORMAT", "json"))
	assert.False(t, EnvironmentFlag(env, "MISSING", "YES"))
}

func TestGetEnvironmentVariables(t *testing.T) {
	t.Setenv("SBB_MCP_TEST_VARIABLE", "a=b")

	assert.Equal(t, "a=b", GetEnvironmentVariables()["SBB_MCP_TEST_VARIABLE"])
}
