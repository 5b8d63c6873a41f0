// Package policy defines the access-control policy document emitted by the
// generator – a single "Allow" statement listing wildcard actions for every
// approved service namespace – together with its JSON encoding and a helper
// to detect drift against a previously generated document.
package policy
