// Package tracing wraps OpenTelemetry so that policy generation can record
// spans without the rest of the code importing the SDK directly. Until Init
// is called spans are no-ops.
package tracing
