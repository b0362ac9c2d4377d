package structaware

import (
	"github.com/sirupsen/logrus"
	"github.com/structaware/structaware-go/client"
	"github.com/structaware/structaware-go/client/auth/store"
	authtransport "github.com/structaware/structaware-go/client/auth/transport"
	"github.com/structaware/structaware-go/guard"
	"github.com/structaware/structaware-go/session"
	"github.com/structaware/structaware-go/storage"
	"github.com/structaware/structaware-go/ui"
)

// Config configures a Runtime.
type Config struct {
	// APIURL is the remote API base URL; empty means client.DefaultBaseURL.
	APIURL string `yaml:"apiURL" json:"apiURL,omitempty"`
	// StorageURL locates the durable state snapshot. Empty keeps all state
	// in memory, which does not survive a restart.
	StorageURL string `yaml:"storageURL" json:"storageURL,omitempty"`
	// SystemPrefersDark seeds the theme when no choice was saved.
	SystemPrefersDark bool `yaml:"systemPrefersDark" json:"systemPrefersDark,omitempty"`

	Logger *logrus.Logger `yaml:"-" json:"-"`
}

// Runtime is the assembled client application core: durable storage, the
// credential store, the authorized API client, the session controller and
// the route guard, wired together once at application start.
type Runtime struct {
	Storage     storage.Storage
	Credentials store.Store
	API         *client.Service
	Session     *session.Controller
	Guard       *guard.Guard
	Theme       *ui.Theme
	Loading     *ui.Loading
}

// New assembles a Runtime. The transport reports authorization failures to
// the session controller, which owns the clear-and-return-to-login side
// effect; the transport itself never navigates.
func New(config *Config) (*Runtime, error) {
	if config == nil {
		config = &Config{}
	}
	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	backing := storage.NewMemory()
	if config.StorageURL != "" {
		var err error
		if backing, err = storage.NewFile(config.StorageURL); err != nil {
			return nil, err
		}
	}
	credentials := store.New(backing)
	roundTripper := authtransport.New(authtransport.WithStore(credentials))
	api := client.New(config.APIURL, client.WithRoundTripper(roundTripper))
	controller := session.New(api, credentials, session.WithLogger(logger))
	roundTripper.OnUnauthorized(controller.Invalidate)

	return &Runtime{
		Storage:     backing,
		Credentials: credentials,
		API:         api,
		Session:     controller,
		Guard:       guard.New(controller, credentials),
		Theme:       ui.NewTheme(backing, config.SystemPrefersDark),
		Loading:     ui.NewLoading(backing),
	}, nil
}
