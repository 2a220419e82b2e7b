// Package flags provides reusable flag types for CLI commands.
package flags

import "strings"

// StringSlice implements pflag.Value for repeatable string flags. Unlike
// cobra's StringSlice it does not split on commas, so glob patterns such as
// "/{a,b}/**" survive intact.
type StringSlice []string

// String returns the string representation of the flag value.
func (s *StringSlice) String() string {
	return strings.Join(*s, ",")
}

// Set appends a value to the slice.
func (s *StringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// Type specifies the type label for Cobra flags.
func (s *StringSlice) Type() string {
	return "stringSlice"
}

// Append adds a value, implementing pflag.SliceValue.
func (s *StringSlice) Append(value string) error {
	return s.Set(value)
}

// Replace swaps the whole slice, implementing pflag.SliceValue.
func (s *StringSlice) Replace(values []string) error {
	*s = append((*s)[:0], values...)
	return nil
}

// GetSlice returns a copy of the values.
func (s *StringSlice) GetSlice() []string {
	return append([]string(nil), *s...)
}
