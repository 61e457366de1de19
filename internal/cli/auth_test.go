package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskAPIKey(t *testing.T) {
	key := validTestKey()
	masked := maskAPIKey(key)

	assert.Equal(t, "lsk_012...cdef", masked)
	assert.NotContains(t, masked, key[8:len(key)-4])
}

func TestMaskAPIKey_ShortInput(t *testing.T) {
	assert.Equal(t, "***", maskAPIKey("lsk_1"))
	assert.Equal(t, "***", maskAPIKey(""))
}

func TestRunAuthLogin_RejectsMalformedKey(t *testing.T) {
	withTempConfigDir(t)

	err := runAuthLogin("not-a-key", defaultAPIURL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid API key format")

	loaded, loadErr := LoadGlobalConfig()
	require.NoError(t, loadErr)
	assert.Nil(t, loaded, "rejected credentials must not be persisted")
}

func TestRunAuthLoginAndLogout(t *testing.T) {
	withTempConfigDir(t)

	require.NoError(t, runAuthLogin(validTestKey(), "https://api.example.com"))

	loaded, err := LoadGlobalConfig()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, validTestKey(), loaded.APIKey)
	assert.Equal(t, "https://api.example.com", loaded.APIURL)

	require.NoError(t, runAuthLogout())

	loaded, err = LoadGlobalConfig()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
