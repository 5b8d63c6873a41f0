package policy

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Diff produces a unified diff between a previously generated policy and the
// current one. An empty string means both are identical.
func Diff(existing, generated []byte, name string) (string, error) {
	if string(existing) == string(generated) {
		return "", nil
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(generated)),
		FromFile: name + " (existing)",
		ToFile:   name + " (generated)",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(ud)
}
