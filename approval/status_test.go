package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsApproved(t *testing.T) {
	testCases := []struct {
		name   string
		status string
		expect bool
	}{
		{name: "capitalised", status: "Approved", expect: true},
		{name: "lower case", status: "approved", expect: true},
		{name: "upper case", status: "APPROVED", expect: true},
		{name: "no keyword", status: "nope", expect: false},
		{name: "empty", status: "", expect: false},
		{name: "denied", status: "Denied", expect: false},
		{name: "not approved", status: "not approved", expect: false},
		{name: "not approved capitalised", status: "Not approved", expect: false},
		{name: "not yet approved", status: "not yet approved", expect: false},
		{name: "isn't approved", status: "isn't approved", expect: false},
		{name: "isnt approved", status: "isnt approved", expect: false},
		{name: "hasn't been approved", status: "hasn't been approved", expect: false},
		{name: "hasnt been approved", status: "hasnt been approved", expect: false},
		{name: "leading whitespace before negation", status: "  not approved", expect: true},
		{name: "leading tab before negation", status: "\tnot approved", expect: true},
		{name: "was approved", status: "was approved", expect: true},
		{name: "it has been approved", status: "it has been approved", expect: true},
		{name: "negation after keyword", status: "approved, then not later revoked", expect: true},
		{name: "negation mid sentence", status: "it is not approved", expect: true},
		{name: "negation prefix of longer word", status: "nothing approved", expect: false},
		{name: "negation joined to keyword", status: "notapproved", expect: false},
		{name: "isnt joined to keyword", status: "Isntapproved", expect: false},
		{name: "negation without keyword", status: "not yet", expect: false},
		{name: "keyword inside word", status: "preapproved", expect: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, IsApproved(tc.status), tc.status)
		})
	}
}

func TestIsApproved_Idempotent(t *testing.T) {
	for _, status := range []string{"Approved", "not approved", "was approved"} {
		assert.Equal(t, IsApproved(status), IsApproved(status), status)
	}
}
