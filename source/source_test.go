package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestFromURL(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	location := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(location, []byte("Service Namespace,Approval Status\n"), 0o644))

	testCases := []struct {
		name        string
		URL         string
		expect      string
		expectError bool
	}{
		{name: "absolute path", URL: location, expect: "Service Namespace,Approval Status\n"},
		{name: "file URL", URL: "file://" + filepath.ToSlash(location), expect: "Service Namespace,Approval Status\n"},
		{name: "missing", URL: filepath.Join(dir, "missing.csv"), expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := FromURL(afs.New(), tc.URL)
			assert.Equal(t, tc.URL, src.Name())
			data, err := src.Read(ctx)
			if tc.expectError {
				assert.True(t, errors.Is(err, ErrUnavailable))
				assert.True(t, errors.Is(err, os.ErrNotExist))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, string(data))
		})
	}
}

func TestFromReader(t *testing.T) {
	src := FromReader("inline", strings.NewReader("a,b\n1,2\n"))
	assert.Equal(t, "inline", src.Name())
	data, err := src.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))
}

func TestSelect(t *testing.T) {
	piped, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer piped.Close()

	assert.Equal(t, StdinName, Select(afs.New(), piped, "export.csv").Name())
	assert.Equal(t, "export.csv", Select(afs.New(), nil, "export.csv").Name())
}
