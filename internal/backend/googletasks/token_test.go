package googletasks

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"gtodo/internal/config"
)

func TestToken_RoundTrip(t *testing.T) {
	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)

	_, err = LoadToken(cfg)
	assert.ErrorContains(t, err, "failed to read token.json")

	require.NoError(t, SaveToken(cfg, &oauth2.Token{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer"}))

	info, err := os.Stat(cfg.TokenPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	got, err := LoadToken(cfg)
	require.NoError(t, err)
	assert.Equal(t, "a", got.AccessToken)
	assert.Equal(t, "r", got.RefreshToken)
}

func TestOAuthConfig(t *testing.T) {
	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)

	_, err = OAuthConfig(cfg)
	assert.ErrorContains(t, err, "failed to read oauth_client.json")

	clientJSON := `{"installed":{"client_id":"id","client_secret":"secret","redirect_uris":["http://localhost"],"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token"}}`
	require.NoError(t, os.WriteFile(cfg.OAuthClientPath(), []byte(clientJSON), 0600))

	oc, err := OAuthConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "id", oc.ClientID)
	assert.Equal(t, []string{Scope}, oc.Scopes)
}
