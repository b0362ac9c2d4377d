package transport

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/structaware/structaware-go/client/auth/store"
	"github.com/structaware/structaware-go/storage"
	"golang.org/x/oauth2"
)

type stubTransport struct {
	roundTrip func(*http.Request) (*http.Response, error)
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return s.roundTrip(req)
}

func response(status int) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(""))}
}

func newStore(t *testing.T, accessToken string) store.Store {
	t.Helper()
	s := store.New(storage.NewMemory())
	if accessToken != "" {
		require.NoError(t, s.Set(&oauth2.Token{AccessToken: accessToken, RefreshToken: "r1"}, false))
	}
	return s
}

func TestRoundTripper_AttachesBearer(t *testing.T) {
	var authorization string
	rt := New(
		WithStore(newStore(t, "t1")),
		WithTransport(&stubTransport{roundTrip: func(req *http.Request) (*http.Response, error) {
			authorization = req.Header.Get("Authorization")
			return response(http.StatusOK), nil
		}}),
	)
	req, _ := http.NewRequest(http.MethodGet, "http://api.local/profile", nil)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bearer t1", authorization)
}

func TestRoundTripper_NoTokenSendsUnauthenticated(t *testing.T) {
	var authorization string
	var notified bool
	rt := New(
		WithStore(newStore(t, "")),
		WithTransport(&stubTransport{roundTrip: func(req *http.Request) (*http.Response, error) {
			authorization = req.Header.Get("Authorization")
			return response(http.StatusUnauthorized), nil
		}}),
		WithUnauthorizedHandler(func(*oauth2.Token) { notified = true }),
	)
	req, _ := http.NewRequest(http.MethodPost, "http://api.local/auth/login", strings.NewReader("{}"))
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, authorization)
	// a login rejection is the caller's business, not a session failure
	assert.False(t, notified)
}

func TestRoundTripper_ReportsAuthorizationFailure(t *testing.T) {
	var failed *oauth2.Token
	rt := New(
		WithStore(newStore(t, "t1")),
		WithTransport(&stubTransport{roundTrip: func(*http.Request) (*http.Response, error) {
			return response(http.StatusUnauthorized), nil
		}}),
	)
	rt.OnUnauthorized(func(token *oauth2.Token) { failed = token })

	req, _ := http.NewRequest(http.MethodGet, "http://api.local/profile", nil)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.NotNil(t, failed)
	assert.Equal(t, "t1", failed.AccessToken)
}

func TestRoundTripper_OtherErrorsPassThrough(t *testing.T) {
	var notified bool
	rt := New(
		WithStore(newStore(t, "t1")),
		WithTransport(&stubTransport{roundTrip: func(*http.Request) (*http.Response, error) {
			return response(http.StatusInternalServerError), nil
		}}),
		WithUnauthorizedHandler(func(*oauth2.Token) { notified = true }),
	)
	req, _ := http.NewRequest(http.MethodGet, "http://api.local/profile", nil)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.False(t, notified)
}

func TestRoundTripper_BodyStaysReplayable(t *testing.T) {
	var seen string
	rt := New(
		WithStore(newStore(t, "t1")),
		WithTransport(&stubTransport{roundTrip: func(req *http.Request) (*http.Response, error) {
			data, _ := io.ReadAll(req.Body)
			seen = string(data)
			return response(http.StatusOK), nil
		}}),
	)
	req, _ := http.NewRequest(http.MethodPost, "http://api.local/profile", strings.NewReader(`{"a":1}`))
	_, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, seen)

	// the original body must still be readable after the round trip
	data, _ := io.ReadAll(req.Body)
	assert.Equal(t, `{"a":1}`, string(data))
}
