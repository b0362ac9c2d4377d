package guard

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/structaware/structaware-go/client"
	"github.com/structaware/structaware-go/client/auth/store"
	"github.com/structaware/structaware-go/client/auth/transport"
	"github.com/structaware/structaware-go/session"
	"github.com/structaware/structaware-go/storage"
	"golang.org/x/oauth2"
)

type fixture struct {
	backing     storage.Storage
	credentials store.Store
	controller  *session.Controller
	guard       *Guard
}

func newFixture(t *testing.T, handler http.Handler) *fixture {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backing := storage.NewMemory()
	credentials := store.New(backing)
	roundTripper := transport.New(transport.WithStore(credentials))
	api := client.New(srv.URL, client.WithRoundTripper(roundTripper))
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	controller := session.New(api, credentials, session.WithLogger(logger))
	roundTripper.OnUnauthorized(controller.Invalidate)
	return &fixture{
		backing:     backing,
		credentials: credentials,
		controller:  controller,
		guard:       New(controller, credentials),
	}
}

func profileHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /profile", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(&client.ProfileResponse{
			User:    &client.User{ID: 1, Name: "A"},
			Profile: &client.Profile{},
		})
	})
	return mux
}

func TestDecide_UninitializedWaits(t *testing.T) {
	f := newFixture(t, profileHandler())
	assert.Equal(t, Wait, f.guard.Decide())
}

func TestDecide_AnonymousRedirects(t *testing.T) {
	f := newFixture(t, profileHandler())
	f.controller.Bootstrap(context.Background())
	assert.Equal(t, Redirect, f.guard.Decide())
	assert.Equal(t, LoginRoute, f.guard.RedirectTarget())
}

func TestDecide_AuthenticatedWithTokenAllows(t *testing.T) {
	f := newFixture(t, profileHandler())
	require.NoError(t, f.credentials.Set(&oauth2.Token{AccessToken: "t1", RefreshToken: "r1"}, false))
	f.controller.Bootstrap(context.Background())
	assert.Equal(t, Allow, f.guard.Decide())
}

func TestDecide_StateAndStoreMustAgree(t *testing.T) {
	f := newFixture(t, profileHandler())
	require.NoError(t, f.credentials.Set(&oauth2.Token{AccessToken: "t1", RefreshToken: "r1"}, false))
	f.controller.Bootstrap(context.Background())
	require.Equal(t, Allow, f.guard.Decide())

	// the persisted credential vanishing out of band must deny rendering
	// even though the in-memory state still says authenticated
	require.NoError(t, f.credentials.Clear())
	assert.Equal(t, Redirect, f.guard.Decide())
}

func TestDecide_NeverAllowsWhileLoading(t *testing.T) {
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("GET /profile", func(w http.ResponseWriter, r *http.Request) {
		<-release
		_ = json.NewEncoder(w).Encode(&client.ProfileResponse{
			User:    &client.User{ID: 1, Name: "A"},
			Profile: &client.Profile{},
		})
	})
	f := newFixture(t, mux)
	require.NoError(t, f.credentials.Set(&oauth2.Token{AccessToken: "t1", RefreshToken: "r1"}, false))

	done := make(chan session.Snapshot, 1)
	go func() {
		done <- f.controller.Bootstrap(context.Background())
	}()

	// wait until the controller has entered Loading
	require.Eventually(t, func() bool {
		return f.controller.State() == session.StateLoading
	}, time.Second, time.Millisecond)
	assert.Equal(t, Wait, f.guard.Decide())

	close(release)
	snap := <-done
	assert.Equal(t, session.StateAuthenticated, snap.State)
	assert.Equal(t, Allow, f.guard.Decide())
}
