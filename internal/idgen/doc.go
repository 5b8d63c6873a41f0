// Package idgen produces run identifiers used to correlate log records and
// spans of a single policy generation. Identifiers are opaque strings.
package idgen
