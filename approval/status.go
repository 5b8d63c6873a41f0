package approval

import (
	"strings"

	"github.com/viant/parsly"
)

const approvedKeyword = "approved"

// IsApproved reports whether status denotes an approved state. The check is
// case-insensitive: the text has to contain "approved" and must not begin
// with a negation ("not", "isn't", "hasn't", apostrophe optional) that is
// followed by "approved" later on. The negation has to be the very first
// text, so "  not approved" and "approved, then not later revoked" are both
// approved.
func IsApproved(status string) bool {
	normalized := strings.ToLower(status)
	if !strings.Contains(normalized, approvedKeyword) {
		return false
	}
	return !isNegated(normalized)
}

// isNegated reports whether status begins with a negation token that precedes
// an "approved" keyword.
func isNegated(status string) bool {
	cursor := parsly.NewCursor("", []byte(status), 0)
	matched := cursor.MatchOne(negationToken)
	if matched.Code != negationToken.Code {
		return false
	}
	return strings.Contains(status[cursor.Pos:], approvedKeyword)
}
