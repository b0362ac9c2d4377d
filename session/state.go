package session

import "github.com/structaware/structaware-go/client"

// State is the derived session state. Authenticated implies both a stored
// session token and an in-memory User; absence of a token implies Anonymous
// once the initial Loading phase resolves.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAnonymous
	StateAuthenticated
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	case StateError:
		return "error"
	}
	return "uninitialized"
}

// Snapshot is an immutable view of the controller at one point in time.
// Views render from snapshots rather than reaching into controller fields.
type Snapshot struct {
	State   State
	User    *client.User
	Profile *client.Profile
	Err     string
}
