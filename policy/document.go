package policy

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Fixed document values.
const (
	Version     = "2012-10-17"
	EffectAllow = "Allow"
	AnyResource = "*"
	// ActionWildcard is appended to a namespace to form its action.
	ActionWildcard = ":*"
)

// Document represents a policy document with exactly one statement.
type Document struct {
	Version   string       `json:"Version" yaml:"Version"`
	Statement []*Statement `json:"Statement" yaml:"Statement"`
}

// Statement represents a single policy statement.
type Statement struct {
	Effect   string   `json:"Effect" yaml:"Effect"`
	Action   []string `json:"Action" yaml:"Action"`
	Resource []string `json:"Resource" yaml:"Resource"`
}

// New creates a document allowing the supplied actions on every resource.
// The action slice is copied.
func New(actions []string) *Document {
	return &Document{
		Version: Version,
		Statement: []*Statement{
			{
				Effect:   EffectAllow,
				Action:   append([]string{}, actions...),
				Resource: []string{AnyResource},
			},
		},
	}
}

// Actions returns "<namespace>:*" for every non-empty namespace, deduplicated
// and sorted ascending by byte order.
func Actions(namespaces []string) []string {
	seen := make(map[string]struct{}, len(namespaces))
	actions := make([]string, 0, len(namespaces))
	for _, namespace := range namespaces {
		if namespace == "" {
			continue
		}
		if _, ok := seen[namespace]; ok {
			continue
		}
		seen[namespace] = struct{}{}
		actions = append(actions, namespace+ActionWildcard)
	}
	sort.Strings(actions)
	return actions
}

// Encode returns the document as JSON indented with four spaces and
// terminated by a newline. HTML characters are left unescaped.
func (d *Document) Encode() ([]byte, error) {
	buffer := new(bytes.Buffer)
	encoder := json.NewEncoder(buffer)
	encoder.SetIndent("", "    ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(d); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
