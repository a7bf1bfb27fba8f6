package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"contentforge/internal/middleware"
	"contentforge/internal/models"
	"contentforge/internal/session"
	"contentforge/internal/store"
)

// totpIssuer appears in authenticator apps next to the account.
const totpIssuer = "ContentForge"

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{
		sessions:  sessions,
		userStore: userStore,
	}
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type codeRequest struct {
	Code string `json:"code"`
}

// userResponse is the safe subset of a user returned to clients.
type userResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	TOTPEnabled bool   `json:"totp_enabled"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		TOTPEnabled: u.TOTPEnabled,
	}
}

// Register creates an account and signs the new user in. New accounts have
// no TOTP enrollment, so the session is immediately fully usable.
func (a *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	errs := make(map[string]string)
	if _, err := mail.ParseAddress(in.Email); err != nil {
		errs["email"] = "A valid email address is required"
	}
	if utf8.RuneCountInString(in.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	}
	if strings.TrimSpace(in.DisplayName) == "" {
		errs["displayName"] = "Display name is required"
	}
	if len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	existing, err := a.userStore.FindByEmail(in.Email)
	if err != nil {
		slog.Error("register lookup failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if existing != nil {
		writeValidationErrors(w, map[string]string{"email": "Email is already registered"})
		return
	}

	user, err := a.userStore.Create(in.Email, in.Password, strings.TrimSpace(in.DisplayName), models.RoleUser)
	if err != nil {
		slog.Error("register create failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
		TwoFADone:   true,
	}); err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"user": toUserResponse(user)})
}

// Login verifies credentials and opens a session. Accounts enrolled in TOTP
// get a half-open session until the 2FA step completes.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.userStore.FindByEmail(in.Email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if user == nil || !a.userStore.CheckPassword(user, in.Password) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	twoFARequired := user.Needs2FA()
	if _, err := a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
		TwoFADone:   !twoFARequired,
	}); err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":            toUserResponse(user),
		"two_fa_required": twoFARequired,
	})
}

// TwoFAVerify completes a login for a TOTP-enrolled account. It upgrades the
// half-open session once the code checks out.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var in codeRequest
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup for 2fa failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if user.TOTPSecret == nil || !user.TOTPEnabled {
		writeError(w, http.StatusBadRequest, "two-factor authentication is not enabled")
		return
	}

	if !totp.Validate(in.Code, *user.TOTPSecret) {
		writeError(w, http.StatusUnauthorized, "invalid verification code")
		return
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": toUserResponse(user)})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the authenticated user's profile.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil {
		slog.Error("me lookup failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if user == nil {
		// Account deleted since the session was created.
		a.sessions.Destroy(r.Context(), w, r)
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": toUserResponse(user)})
}

// TOTPSetup generates a fresh TOTP secret for the authenticated user and
// returns it with a QR code PNG. The secret is inactive until confirmed.
func (a *Auth) TOTPSetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: sess.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := a.userStore.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		slog.Error("save totp secret failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"secret":      key.Secret(),
		"otpauth_url": key.URL(),
		"qr_png":      base64.StdEncoding.EncodeToString(qrPNG),
	})
}

// TOTPConfirm activates TOTP after the user proves they hold the secret.
func (a *Auth) TOTPConfirm(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var in codeRequest
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup for totp confirm failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if user.TOTPSecret == nil {
		writeError(w, http.StatusBadRequest, "two-factor setup has not been started")
		return
	}

	if !totp.Validate(in.Code, *user.TOTPSecret) {
		writeError(w, http.StatusUnauthorized, "invalid verification code")
		return
	}

	if !user.TOTPEnabled {
		if err := a.userStore.EnableTOTP(user.ID); err != nil {
			slog.Error("enable totp failed", "error", err)
			writeError(w, http.StatusServiceUnavailable, "service unavailable")
			return
		}
		user.TOTPEnabled = true
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": toUserResponse(user)})
}
