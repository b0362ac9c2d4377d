package client

// User is the identity record returned by the remote API. It is held in
// memory only and re-derived from the session token via a profile fetch.
type User struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Profession string `json:"profession,omitempty"`
}

// Preferences are per-user settings carried inside the profile.
type Preferences struct {
	Units         string `json:"units,omitempty"`
	DarkMode      bool   `json:"darkMode,omitempty"`
	Notifications bool   `json:"notifications,omitempty"`
}

// Profile holds extended user attributes; same lifecycle as User.
type Profile struct {
	Company     string       `json:"company,omitempty"`
	AvatarURL   string       `json:"avatarUrl,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Profession string `json:"profession"`
	Password   string `json:"password"`
}

// AuthResponse is returned by login, register and the social login
// endpoints: a session token pair plus the identity record.
type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// ProfileResponse is returned by the profile fetch.
type ProfileResponse struct {
	User    *User    `json:"user"`
	Profile *Profile `json:"profile"`
}

// UpdateProfileResponse is returned by the profile update.
type UpdateProfileResponse struct {
	Profile *Profile `json:"profile"`
}

// PreferencesResponse is returned by the preferences endpoints.
type PreferencesResponse struct {
	Preferences *Preferences `json:"preferences"`
}

// AvatarResponse is returned by the avatar upload.
type AvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}
