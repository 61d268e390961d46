package notify

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/zeromicro/go-zero/core/logx"
)

// Credential variant names as used in configuration.
const (
	VariantPassword = "password"
	VariantLink     = "link"
)

// ActivationKeyLength is the length of generated activation keys.
const ActivationKeyLength = 20

const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CredentialIssuer produces the credential material for a new user.
// A deployment uses exactly one issuer.
type CredentialIssuer interface {
	Kind() CredentialKind
	Issue(ctx context.Context, user UserAccount, plaintextPassword string) (Credential, error)
}

// KeyStore persists hashed activation keys in the host's user records.
type KeyStore interface {
	SetActivationKey(ctx context.Context, login, hashedKey string) error
}

// NewIssuer returns the issuer for a configured variant name.
func NewIssuer(variant string, keys KeyStore, loginURL string) (CredentialIssuer, error) {
	switch strings.ToLower(strings.TrimSpace(variant)) {
	case VariantPassword, "":
		return PasswordIssuer{}, nil
	case VariantLink:
		if keys == nil {
			return nil, fmt.Errorf("%w: link variant needs a key store", ErrMissingCollaborator)
		}
		return NewLinkIssuer(keys, loginURL), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}

// PasswordIssuer passes the caller's plaintext password through. Nothing is
// persisted.
type PasswordIssuer struct{}

// Kind implements CredentialIssuer.
func (PasswordIssuer) Kind() CredentialKind { return CredentialPassword }

// Issue implements CredentialIssuer.
func (PasswordIssuer) Issue(_ context.Context, _ UserAccount, plaintextPassword string) (Credential, error) {
	if plaintextPassword == "" {
		return Credential{}, ErrMissingPassword
	}
	return Credential{Kind: CredentialPassword, Value: plaintextPassword}, nil
}

// LinkIssuer generates a reset key, stores its hash against the user and
// returns a login link embedding the plaintext key. The stored key is not
// rolled back if the later send fails.
type LinkIssuer struct {
	keys     KeyStore
	loginURL string
	now      func() time.Time
	params   *argon2id.Params
}

// NewLinkIssuer creates a link issuer writing to keys.
func NewLinkIssuer(keys KeyStore, loginURL string) *LinkIssuer {
	return &LinkIssuer{
		keys:     keys,
		loginURL: loginURL,
		now:      time.Now,
		params:   argon2id.DefaultParams,
	}
}

// Kind implements CredentialIssuer.
func (i *LinkIssuer) Kind() CredentialKind { return CredentialLink }

// Issue implements CredentialIssuer.
func (i *LinkIssuer) Issue(ctx context.Context, user UserAccount, plaintextPassword string) (Credential, error) {
	if plaintextPassword != "" {
		logx.WithContext(ctx).Infow("Plaintext password ignored by link variant", logx.Field("login", user.Login))
	}

	key, err := GenerateKey(ActivationKeyLength)
	if err != nil {
		return Credential{}, fmt.Errorf("generate activation key: %w", err)
	}

	hash, err := argon2id.CreateHash(key, i.params)
	if err != nil {
		return Credential{}, fmt.Errorf("hash activation key: %w", err)
	}

	stored := strconv.FormatInt(i.now().Unix(), 10) + ":" + hash
	if err := i.keys.SetActivationKey(ctx, user.Login, stored); err != nil {
		return Credential{}, fmt.Errorf("store activation key: %w", err)
	}

	return Credential{
		Kind:  CredentialLink,
		Value: BuildLoginLink(i.loginURL, key, user.Login),
	}, nil
}

// GenerateKey returns n random alphanumeric characters.
func GenerateKey(n int) (string, error) {
	limit := big.NewInt(int64(len(keyAlphabet)))
	b := make([]byte, n)
	for j := range b {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b[j] = keyAlphabet[idx.Int64()]
	}
	return string(b), nil
}

// BuildLoginLink returns the password-reset login URL for key and login.
func BuildLoginLink(loginURL, key, login string) string {
	sep := "?"
	if strings.Contains(loginURL, "?") {
		sep = "&"
	}
	return loginURL + sep + "action=rp&key=" + key + "&login=" + rawURLEncode(login)
}

// rawURLEncode percent-encodes everything except unreserved characters,
// spaces included.
func rawURLEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// VerifyActivationKey checks key against a stored "<unix>:<hash>" value.
// maxAge of zero disables the expiry check.
func VerifyActivationKey(stored, key string, maxAge time.Duration, now time.Time) (bool, error) {
	ts, hash, ok := strings.Cut(stored, ":")
	if !ok {
		return false, errors.New("malformed activation key")
	}
	issued, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return false, fmt.Errorf("malformed activation key timestamp: %w", err)
	}
	if maxAge > 0 && now.Sub(time.Unix(issued, 0)) > maxAge {
		return false, nil
	}
	return argon2id.ComparePasswordAndHash(key, hash)
}
