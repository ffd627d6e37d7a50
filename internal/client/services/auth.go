// Package services contains the application services of the Campusfind
// client. Services validate input before any network call, orchestrate the
// REST gateway, and keep the session object coherent. The UI layers (TUI
// and one-shot commands) talk only to these interfaces.
package services

import (
	"context"
	"strings"

	"campusfind/internal/client/api"
	"campusfind/internal/client/models"
	"campusfind/internal/client/session"
	"campusfind/internal/common"
)

// RegistrationForm collects the register-form fields.
type RegistrationForm struct {
	Fullname string
	Username string
	Email    string
	Role     models.Role
	Password string
}

// LoginOutcome describes the result of a successful password step.
type LoginOutcome struct {
	MFARequired bool
	// MFACode is the simulated second factor the server returned in-band.
	// The UI shows it in a notification, as the portal does.
	MFACode string
	Message string
}

// AuthService drives the LoggedOut -> AwaitingMFA -> LoggedIn flow.
//
// Contract:
//   - Login: both fields required; missing input short-circuits with
//     common.ErrMissingCredentials before any network call.
//   - VerifyMFA: only valid in AwaitingMFA; success binds the returned
//     user to the session and installs the identity on the gateway.
//   - Register: all form fields required except Role, which defaults to
//     Student.
//   - Logout: clears session and gateway identity; never fails.
//
// All methods honor context cancellation.
type AuthService interface {
	Register(ctx context.Context, form RegistrationForm) (string, error)
	Login(ctx context.Context, username, password string) (*LoginOutcome, error)
	VerifyMFA(ctx context.Context, code string) (models.User, error)
	ForgotPassword(ctx context.Context, email string) (*api.RecoveryResult, error)
	Logout()
}

type authService struct {
	client  api.Client
	session *session.Session
}

// NewAuthService constructs an AuthService bound to the gateway and session.
func NewAuthService(client api.Client, sess *session.Session) AuthService {
	return &authService{client: client, session: sess}
}

func (a *authService) Register(ctx context.Context, form RegistrationForm) (string, error) {
	form.Fullname = strings.TrimSpace(form.Fullname)
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)

	if form.Fullname == "" || form.Username == "" || form.Email == "" || form.Password == "" {
		return "", common.ErrMissingFields
	}
	if form.Role == "" {
		form.Role = models.RoleStudent
	}

	return a.client.Register(ctx, api.RegisterRequest{
		Fullname: form.Fullname,
		Username: form.Username,
		Email:    form.Email,
		Role:     string(form.Role),
		Password: form.Password,
	})
}

func (a *authService) Login(ctx context.Context, username, password string) (*LoginOutcome, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, common.ErrMissingCredentials
	}

	res, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if !res.MFARequired() {
		// The portal always answers the password step with mfa_required;
		// anything else is surfaced as-is without touching the session.
		return &LoginOutcome{Message: res.Message}, nil
	}

	a.session.BeginMFA(res.Username)
	return &LoginOutcome{MFARequired: true, MFACode: res.MFACode, Message: res.Message}, nil
}

func (a *authService) VerifyMFA(ctx context.Context, code string) (models.User, error) {
	if a.session.State() != session.StateAwaitingMFA {
		return models.User{}, common.ErrNoPendingLogin
	}

	user, err := a.client.VerifyMFA(ctx, a.session.PendingUser(), strings.TrimSpace(code))
	if err != nil {
		return models.User{}, err
	}

	a.session.Establish(user)
	a.client.SetIdentity(user.Username)
	return user, nil
}

func (a *authService) ForgotPassword(ctx context.Context, email string) (*api.RecoveryResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, common.ErrMissingFields
	}
	return a.client.ForgotPassword(ctx, email)
}

func (a *authService) Logout() {
	a.session.Clear()
	a.client.SetIdentity("")
}
