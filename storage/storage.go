package storage

// Fixed keys for all durable client state. No versioning or migration
// scheme is applied; values are stored in cleartext.
const (
	KeyToken          = "token"
	KeyRefreshToken   = "refreshToken"
	KeyRememberMe     = "rememberMe"
	KeyTheme          = "theme"
	KeyHasSeenLoading = "hasSeenLoading"
)

// Storage is a durable string key-value store, the client-side equivalent of
// browser local storage: it survives a process restart but is scoped to a
// single installation. The in-memory default is fine for tests; the
// file-backed implementation persists across restarts.
type Storage interface {
	Get(key string) (string, bool)
	Put(key, value string) error
	// Delete removes all given keys as a single flush, so an observer never
	// sees some of them removed and others intact.
	Delete(keys ...string) error
	Clear() error
}
