package scp

import "errors"

// ErrNoApprovedNamespaces is returned when an export yields no approved
// namespace, so that an empty-permission policy is never produced.
var ErrNoApprovedNamespaces = errors.New("no approved namespaces found")
