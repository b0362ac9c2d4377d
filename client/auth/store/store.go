package store

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/structaware/structaware-go/storage"
	"golang.org/x/oauth2"
)

// Store is the credential store: it owns the persisted session token pair.
// The session token is an opaque short-lived bearer credential; the refresh
// token is its long-lived companion, held only so it can be presented to the
// logout endpoint. Both are kept in durable storage so a session survives a
// process restart.
type Store interface {
	// Set persists the token pair, replacing whatever was held before.
	// The remember flag is advisory only; token expiry is server-controlled.
	Set(token *oauth2.Token, remember bool) error
	// Lookup returns the persisted token pair, if any.
	Lookup() (*oauth2.Token, bool)
	Remembered() bool
	// Clear removes the token pair and the remember-me marker in a single
	// flush; no observer can see one removed and the others intact.
	Clear() error
}

type credentialStore struct {
	backing storage.Storage
}

// New returns a Store persisting credentials in the given backing storage.
func New(backing storage.Storage) Store {
	return &credentialStore{backing: backing}
}

func (s *credentialStore) Set(token *oauth2.Token, remember bool) error {
	if err := s.backing.Put(storage.KeyToken, token.AccessToken); err != nil {
		return err
	}
	if err := s.backing.Put(storage.KeyRefreshToken, token.RefreshToken); err != nil {
		return err
	}
	if remember {
		return s.backing.Put(storage.KeyRememberMe, "true")
	}
	return s.backing.Delete(storage.KeyRememberMe)
}

func (s *credentialStore) Lookup() (*oauth2.Token, bool) {
	accessToken, ok := s.backing.Get(storage.KeyToken)
	if !ok || accessToken == "" {
		return nil, false
	}
	refreshToken, _ := s.backing.Get(storage.KeyRefreshToken)
	return &oauth2.Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Expiry:       expiry(accessToken),
	}, true
}

func (s *credentialStore) Remembered() bool {
	value, ok := s.backing.Get(storage.KeyRememberMe)
	return ok && value == "true"
}

func (s *credentialStore) Clear() error {
	return s.backing.Delete(storage.KeyToken, storage.KeyRefreshToken, storage.KeyRememberMe)
}

// expiry extracts the exp claim from a JWT session token without verifying
// its signature; the claim is informational on the client, expiry is
// enforced server-side. Opaque or claimless tokens yield a zero time.
func expiry(raw string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
