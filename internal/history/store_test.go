// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Record("validate", "/tmp/proj", true, "all checks passed")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = s.Record("package", "/tmp/proj", false, "missing figures")
	require.NoError(t, err)

	runs, err := s.List(0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, "package", runs[0].Operation)
	assert.False(t, runs[0].Success)
	assert.Equal(t, "validate", runs[1].Operation)
	assert.True(t, runs[1].Success)
}

func TestListLimit(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 5; i++ {
		_, err := s.Record("init", "", true, "")
		require.NoError(t, err)
	}

	runs, err := s.List(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestReopenPersists(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	_, err = s.Record("extract", "", true, "arxiv-2301.00001")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.List(0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "extract", runs[0].Operation)
}

func TestExportYAML(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Record("checklist", "/tmp/proj", true, "6 items")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "history.yaml")
	require.NoError(t, s.ExportYAML(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var runs []Run
	require.NoError(t, yaml.Unmarshal(data, &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "checklist", runs[0].Operation)
	assert.Equal(t, "6 items", runs[0].Message)
}
