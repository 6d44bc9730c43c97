// Package parsererror defines the typed errors shared by the extraction and
// classification pipeline.
package parsererror

import "fmt"

// ParseError represents a per-record parse failure. These are logged as
// warnings while the record degrades; they never abort a batch.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: failed to parse %s='%s': %v",
			e.Parser, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: failed to parse %s='%s'", e.Parser, e.Field, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration-level failure. Unlike per-record
// parse problems, these are surfaced to the caller as hard errors: a keyword
// table that fails to load entirely, or classifying with no table at all.
type ConfigError struct {
	Source string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error in %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %s", e.Source, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
