package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radixlang/radix/internal/config"
)

func TestHasSourceExt(t *testing.T) {
	assert.True(t, config.HasSourceExt("lib/radix.rdx"))
	assert.True(t, config.HasSourceExt("main.radix"))
	assert.False(t, config.HasSourceExt("main.go"))
	assert.False(t, config.HasSourceExt("rdx"))
}

func TestIsValidTarget(t *testing.T) {
	for _, target := range config.ValidTargets {
		assert.True(t, config.IsValidTarget(target))
	}
	assert.False(t, config.IsValidTarget("jvm"))
}

func TestLoadProjectMissingFileGivesDefaults(t *testing.T) {
	p, err := config.LoadProject(filepath.Join(t.TempDir(), "radix.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.TargetCanonical, p.DefaultTarget)
	assert.Equal(t, config.SourceFileExtensions, p.SourceExts)
}

func TestLoadProjectReadsYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "radix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaultTarget: rust\n"), 0o644))

	p, err := config.LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, config.TargetSystems, p.DefaultTarget)
	assert.Equal(t, config.SourceFileExtensions, p.SourceExts)
}

func TestLoadProjectRejectsBadYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "radix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\t not yaml ["), 0o644))

	_, err := config.LoadProject(path)
	assert.Error(t, err)
}
