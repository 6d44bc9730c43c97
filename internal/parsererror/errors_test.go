package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Parser: "extractor", Field: "date", Value: "13/45/2024"}
	assert.Equal(t, "extractor: failed to parse date='13/45/2024'", err.Error())

	wrapped := &ParseError{Parser: "extractor", Field: "amount", Value: "x", Err: errors.New("bad digit")}
	assert.Contains(t, wrapped.Error(), "bad digit")
	assert.ErrorIs(t, wrapped, wrapped.Err)
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Source: "keywords.yaml", Reason: "file not found"}
	assert.Equal(t, "configuration error in keywords.yaml: file not found", err.Error())

	inner := errors.New("yaml: line 3")
	wrapped := &ConfigError{Source: "keywords.yaml", Reason: "invalid syntax", Err: inner}
	assert.Contains(t, wrapped.Error(), "yaml: line 3")
	assert.ErrorIs(t, wrapped, inner)
}
