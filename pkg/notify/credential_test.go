package notify

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = &argon2id.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func newTestLinkIssuer(keys KeyStore) *LinkIssuer {
	i := NewLinkIssuer(keys, "https://site/wp-login.php")
	i.params = testParams
	return i
}

func TestGenerateKey(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		key, err := GenerateKey(ActivationKeyLength)
		require.NoError(t, err)
		require.Len(t, key, ActivationKeyLength)
		for _, r := range key {
			assert.Truef(t, strings.ContainsRune(keyAlphabet, r), "unexpected rune %q", r)
		}
		assert.False(t, seen[key], "duplicate key")
		seen[key] = true
	}
}

func TestBuildLoginLink(t *testing.T) {
	tests := []struct {
		name     string
		loginURL string
		login    string
		want     string
	}{
		{"plain", "https://site/wp-login.php", "jane", "https://site/wp-login.php?action=rp&key=abc&login=jane"},
		{"space", "https://site/wp-login.php", "jane doe", "https://site/wp-login.php?action=rp&key=abc&login=jane%20doe"},
		{"reserved", "https://site/wp-login.php", "a+b@c", "https://site/wp-login.php?action=rp&key=abc&login=a%2Bb%40c"},
		{"existing query", "https://site/login?lang=en", "jane", "https://site/login?lang=en&action=rp&key=abc&login=jane"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildLoginLink(tt.loginURL, "abc", tt.login))
		})
	}
}

func TestPasswordIssuer(t *testing.T) {
	var i PasswordIssuer
	assert.Equal(t, CredentialPassword, i.Kind())

	cred, err := i.Issue(context.Background(), jane, "Tr0ub4dor")
	require.NoError(t, err)
	assert.Equal(t, Credential{Kind: CredentialPassword, Value: "Tr0ub4dor"}, cred)

	_, err = i.Issue(context.Background(), jane, "")
	assert.ErrorIs(t, err, ErrMissingPassword)
}

func TestLinkIssuerStoresHashedKey(t *testing.T) {
	store := newFakeStore()
	i := newTestLinkIssuer(store)
	now := time.Unix(1700000000, 0)
	i.now = func() time.Time { return now }

	cred, err := i.Issue(context.Background(), jane, "")
	require.NoError(t, err)
	assert.Equal(t, CredentialLink, cred.Kind)

	u, err := url.Parse(cred.Value)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "rp", q.Get("action"))
	assert.Equal(t, "jane", q.Get("login"))
	key := q.Get("key")
	require.Len(t, key, ActivationKeyLength)

	stored := store.keys["jane"]
	require.True(t, strings.HasPrefix(stored, "1700000000:$argon2id$"))
	assert.NotContains(t, stored, key)

	ok, err := VerifyActivationKey(stored, key, 24*time.Hour, now.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyActivationKey(stored, "wrong", 0, now)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = VerifyActivationKey(stored, key, 24*time.Hour, now.Add(48*time.Hour))
	require.NoError(t, err)
	assert.False(t, ok, "expired key must not verify")
}

func TestLinkIssuerStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.keyErr = errors.New("db down")

	_, err := newTestLinkIssuer(store).Issue(context.Background(), jane, "")
	assert.ErrorContains(t, err, "db down")
}

func TestVerifyActivationKeyMalformed(t *testing.T) {
	_, err := VerifyActivationKey("nocolon", "k", 0, time.Now())
	assert.Error(t, err)

	_, err = VerifyActivationKey("abc:hash", "k", 0, time.Now())
	assert.Error(t, err)
}

func TestNewIssuer(t *testing.T) {
	i, err := NewIssuer("password", nil, "")
	require.NoError(t, err)
	assert.Equal(t, CredentialPassword, i.Kind())

	i, err = NewIssuer(" LINK ", newFakeStore(), "https://site/wp-login.php")
	require.NoError(t, err)
	assert.Equal(t, CredentialLink, i.Kind())

	_, err = NewIssuer("link", nil, "")
	assert.ErrorIs(t, err, ErrMissingCollaborator)

	_, err = NewIssuer("magic", nil, "")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestCredentialKindString(t *testing.T) {
	assert.Equal(t, "password", CredentialPassword.String())
	assert.Equal(t, "link", CredentialLink.String())
	assert.Equal(t, "unknown", CredentialKind(9).String())
}
