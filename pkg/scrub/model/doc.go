// Package model provides the data structures shared across the scrub packages.
// It defines the record and configuration types the cleaning pipeline consumes,
// the report it produces, and the option hooks observability implementations
// attach to.
package model
