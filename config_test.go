package scp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestConfig_Load(t *testing.T) {
	dir := t.TempDir()
	location := filepath.Join(dir, "scp.yaml")
	require.NoError(t, os.WriteFile(location, []byte("source: services.csv\nnamespaceColumn: Service Identifier\n"), 0o644))

	t.Setenv("SCP_STATUS_COLUMN", "Status")
	t.Setenv("SCP_CHECK", "policy.json")

	config := DefaultConfig()
	require.NoError(t, config.LoadYAML(context.Background(), afs.New(), location))
	require.NoError(t, config.LoadEnv())

	assert.EqualValues(t, &Config{
		Source:          "services.csv",
		NamespaceColumn: "Service Identifier",
		StatusColumn:    "Status",
		Check:           "policy.json",
	}, config)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		config      *Config
		expectError bool
	}{
		{name: "default", config: DefaultConfig()},
		{name: "nil", config: nil},
		{name: "empty namespace column", config: &Config{StatusColumn: "Approval Status"}, expectError: true},
		{name: "empty status column", config: &Config{NamespaceColumn: "Service Namespace"}, expectError: true},
		{name: "same columns", config: &Config{NamespaceColumn: "x", StatusColumn: "x"}, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
