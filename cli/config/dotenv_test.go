package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvLookupReadsFile(t *testing.T) {
	path := writeFile(t, ".env", "PROMPTRUN_TEST_FILE_ONLY=from-file\n# comment\nexport PROMPTRUN_TEST_EXPORTED=\"quoted value\"\n")

	lookup, err := EnvLookup(path)
	require.NoError(t, err)

	v, ok := lookup("PROMPTRUN_TEST_FILE_ONLY")
	assert.True(t, ok)
	assert.Equal(t, "from-file", v)

	v, ok = lookup("PROMPTRUN_TEST_EXPORTED")
	assert.True(t, ok)
	assert.Equal(t, "quoted value", v)

	_, ok = lookup("PROMPTRUN_TEST_ABSENT")
	assert.False(t, ok)
}

func TestEnvLookupProcessWins(t *testing.T) {
	t.Setenv("PROMPTRUN_TEST_BOTH", "from-process")
	path := writeFile(t, ".env", "PROMPTRUN_TEST_BOTH=from-file\n")

	lookup, err := EnvLookup(path)
	require.NoError(t, err)

	v, ok := lookup("PROMPTRUN_TEST_BOTH")
	assert.True(t, ok)
	assert.Equal(t, "from-process", v)
}

func TestEnvLookupEmptyProcessValueStillWins(t *testing.T) {
	t.Setenv("PROMPTRUN_TEST_EMPTY", "")
	path := writeFile(t, ".env", "PROMPTRUN_TEST_EMPTY=from-file\n")

	lookup, err := EnvLookup(path)
	require.NoError(t, err)

	v, ok := lookup("PROMPTRUN_TEST_EMPTY")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestEnvLookupMissingFile(t *testing.T) {
	t.Setenv("PROMPTRUN_TEST_PROCESS", "p")

	for _, path := range []string{"", "/nonexistent/.env"} {
		lookup, err := EnvLookup(path)
		require.NoError(t, err, "path %q", path)

		v, ok := lookup("PROMPTRUN_TEST_PROCESS")
		assert.True(t, ok)
		assert.Equal(t, "p", v)
	}
}

func TestEnvLookupDoesNotModifyEnvironment(t *testing.T) {
	path := writeFile(t, ".env", "PROMPTRUN_TEST_NOT_EXPORTED=x\n")

	_, err := EnvLookup(path)
	require.NoError(t, err)

	_, ok := os.LookupEnv("PROMPTRUN_TEST_NOT_EXPORTED")
	assert.False(t, ok)
}
