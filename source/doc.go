// Package source abstracts where the service export is read from. A Source
// is either a storage location (local path or any afs URL) or an already open
// stream such as standard input.
package source
