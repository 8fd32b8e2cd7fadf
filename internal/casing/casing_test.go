package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"inputPath", []string{"input", "Path"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"the_last_one", []string{"the", "last", "one"}},
		{"ALMOST_THERE", []string{"ALMOST", "THERE"}},
		{"aye-bee-cee-dee", []string{"aye", "bee", "cee", "dee"}},
		{"--weird..input", []string{"weird", "input"}},
		{"v2Beta", []string{"v2", "Beta"}},
		{"ABcD", []string{"A", "Bc", "D"}},
		{"a", []string{"a"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Words(tt.input))
		})
	}
}

func TestCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"inputPath", "inputPath"},
		{"input_path", "inputPath"},
		{"input-path", "inputPath"},
		{"InputPath", "inputPath"},
		{"SOME_THING", "someThing"},
		{"parseURL", "parseUrl"},
		{"version2", "version2"},
		{"version_2", "version_2"},
		{"a", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Camel(tt.input))
		})
	}
}

func TestKebab(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"inputPath", "input-path"},
		{"something", "something"},
		{"ayeBeeCeeDee", "aye-bee-cee-dee"},
		{"XMLParser", "xml-parser"},
		{"a", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Kebab(tt.input))
		})
	}
}

func TestPascal(t *testing.T) {
	assert.Equal(t, "InputPath", Pascal("inputPath"))
	assert.Equal(t, "A", Pascal("a"))
	assert.Equal(t, "TheLastOne", Pascal("the_last_one"))
	assert.Equal(t, "V2Beta", Pascal("v2Beta"))
}

func TestFold(t *testing.T) {
	for _, in := range []string{"ayeBee", "aye-bee", "aye_bee", "AYE_BEE", "AyeBee", "--aye-bee"} {
		assert.Equal(t, "ayebee", Fold(in), in)
	}
}

func TestIsCamel(t *testing.T) {
	valid := []string{"a", "help", "inputPath", "ayeBeeCeeDee", "version2", "v2Beta"}
	for _, s := range valid {
		assert.True(t, IsCamel(s), s)
	}

	invalid := []string{"", "SOME_THING", "InputPath", "input_path", "input-path", "parseURL", "2fa", "with space", "version_2"}
	for _, s := range invalid {
		assert.False(t, IsCamel(s), s)
	}
}
