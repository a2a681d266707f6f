package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootWalksDefaultChain(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "37\n38\n39\n39\n38\n37\n", out)
}

func TestWalkStorages(t *testing.T) {
	for _, name := range []string{"list", "arena"} {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, "--storage", name, "walk", "1", "2")
			require.NoError(t, err)
			assert.Equal(t, "1\n2\n2\n1\n", out)
		})
	}
}

func TestWalkDirection(t *testing.T) {
	out, err := execute(t, "walk", "--direction", "backward")
	require.NoError(t, err)
	assert.Equal(t, "39\n38\n37\n", out)

	_, err = execute(t, "walk", "--direction", "sideways")
	assert.Error(t, err)
}

func TestWalkInvalidValue(t *testing.T) {
	_, err := execute(t, "walk", "1", "x")
	assert.Error(t, err)
}

func TestWalkUsesConfigSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chainwalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: [4, 5]\nverify: true\n"), 0644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "walk"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "4\n5\n5\n4\n", out.String())
}

func TestUnknownStorageFlag(t *testing.T) {
	_, err := execute(t, "--storage", "btree")
	assert.Error(t, err)
}

func TestVerifyCommand(t *testing.T) {
	out, err := execute(t, "verify")
	require.NoError(t, err)
	assert.Equal(t, "[{1: 37}, {2: 38}, {3: 39}]\nok: 3 nodes\n", out)
}
