// Package config holds the process-wide settings for the instance loader.
//
// Settings are read once from a YAML document and are effectively immutable
// afterwards; the only derived state is the zero-padding format used for
// instance indices. Decoding is strict: unknown keys in the settings file
// are a configuration error, not silently absorbed fields.
//
// Numeric fields whose absence must be distinguishable from an explicit
// zero (the problem-size bounds and the algorithm time limits) are pointers;
// access goes through checked accessors that fail with MissingFieldError at
// the point of use rather than assuming defaults.
package config
