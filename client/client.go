package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// DefaultBaseURL is the development default of the remote API.
const DefaultBaseURL = "http://localhost:3000/api/v1"

// Service is a typed client for the StructAware REST API. Authorization is
// the concern of the round tripper installed in its http.Client (see
// client/auth/transport); the Service itself only shapes requests and
// decodes responses.
type Service struct {
	baseURL    string
	httpClient *http.Client
}

// New creates an API client for the given base URL.
func New(baseURL string, options ...Option) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	ret := &Service{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Register creates an account and signs the user in.
func (s *Service) Register(ctx context.Context, registration *Registration) (*AuthResponse, error) {
	return call[AuthResponse](ctx, s, http.MethodPost, "/auth/register", registration)
}

// Login exchanges credentials for a session token pair.
func (s *Service) Login(ctx context.Context, credentials *Credentials) (*AuthResponse, error) {
	return call[AuthResponse](ctx, s, http.MethodPost, "/auth/login", credentials)
}

// LoginWithGoogle signs in with a Google ID token.
func (s *Service) LoginWithGoogle(ctx context.Context, idToken string) (*AuthResponse, error) {
	return call[AuthResponse](ctx, s, http.MethodPost, "/auth/login/google", map[string]string{"idToken": idToken})
}

// LoginWithLinkedIn signs in with a LinkedIn authorization code.
func (s *Service) LoginWithLinkedIn(ctx context.Context, code string) (*AuthResponse, error) {
	return call[AuthResponse](ctx, s, http.MethodPost, "/auth/login/linkedin", map[string]string{"code": code})
}

// Refresh exchanges a refresh token for a new session token pair. The
// session controller does not drive this call; it exists for callers that
// manage their own renewal.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	return call[AuthResponse](ctx, s, http.MethodPost, "/auth/refresh", map[string]string{"refreshToken": refreshToken})
}

// Logout revokes the given refresh token server-side.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	_, err := call[struct{}](ctx, s, http.MethodPost, "/auth/logout", map[string]string{"refreshToken": refreshToken})
	return err
}

// ForgotPassword requests a password-reset email.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	_, err := call[struct{}](ctx, s, http.MethodPost, "/auth/forgot-password", map[string]string{"email": email})
	return err
}

// ResetPassword sets a new password using a reset token from email.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	_, err := call[struct{}](ctx, s, http.MethodPost, "/auth/reset-password", map[string]string{"token": token, "newPassword": newPassword})
	return err
}

// ChangePassword replaces the password of the signed-in user.
func (s *Service) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	_, err := call[struct{}](ctx, s, http.MethodPost, "/auth/change-password", map[string]string{"oldPassword": oldPassword, "newPassword": newPassword})
	return err
}

// GetProfile fetches the identity record and profile of the token's owner.
func (s *Service) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	return call[ProfileResponse](ctx, s, http.MethodGet, "/profile", nil)
}

// UpdateProfile replaces profile fields.
func (s *Service) UpdateProfile(ctx context.Context, profile *Profile) (*UpdateProfileResponse, error) {
	return call[UpdateProfileResponse](ctx, s, http.MethodPut, "/profile", profile)
}

// GetPreferences fetches user preferences.
func (s *Service) GetPreferences(ctx context.Context) (*PreferencesResponse, error) {
	return call[PreferencesResponse](ctx, s, http.MethodGet, "/profile/preferences", nil)
}

// UpdatePreferences replaces user preferences.
func (s *Service) UpdatePreferences(ctx context.Context, preferences *Preferences) (*PreferencesResponse, error) {
	return call[PreferencesResponse](ctx, s, http.MethodPut, "/profile/preferences", preferences)
}

// UploadAvatar uploads an avatar image as multipart form data.
func (s *Service) UploadAvatar(ctx context.Context, filename string, content io.Reader) (*AvatarResponse, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("avatar", filename)
	if err != nil {
		return nil, err
	}
	if _, err = io.Copy(part, content); err != nil {
		return nil, err
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}
	req, err := s.newRequest(ctx, http.MethodPost, "/profile/avatar", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return do[AvatarResponse](s, req)
}

func (s *Service) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

func call[T any](ctx context.Context, s *Service, method, path string, body any) (*T, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %v %v request: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := s.newRequest(ctx, method, path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return do[T](s, req)
}

func do[T any](s *Service, req *http.Request) (*T, error) {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &Error{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(data, apiErr)
		return nil, apiErr
	}
	result := new(T)
	if len(data) > 0 {
		if err = json.Unmarshal(data, result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %v %v response: %w", req.Method, req.URL.Path, err)
		}
	}
	return result, nil
}
