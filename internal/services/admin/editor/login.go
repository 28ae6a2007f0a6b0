package editor

import (
	"context"
	"fmt"

	apperrors "github.com/louisbranch/megamix/internal/platform/errors"
	"github.com/louisbranch/megamix/internal/services/admin/form"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
	"github.com/louisbranch/megamix/internal/services/admin/routepath"
	"github.com/louisbranch/megamix/internal/services/admin/session"
	"github.com/louisbranch/megamix/internal/storefront"
)

// Authenticator exchanges credentials for a session token.
type Authenticator interface {
	Login(ctx context.Context, creds storefront.Credentials) (string, error)
}

// TokenWriter persists the session token once login succeeds.
type TokenWriter func(token string)

// LoginForm drives the login screen. It is built per request.
type LoginForm struct {
	auth    Authenticator
	notices notice.Sink
	store   TokenWriter
	draft   form.LoginDraft
	errs    form.FieldErrors
}

// NewLoginForm builds a login form for one submission.
func NewLoginForm(auth Authenticator, notices notice.Sink, store TokenWriter) *LoginForm {
	if notices == nil {
		notices = notice.Discard
	}
	return &LoginForm{
		auth:    auth,
		notices: notices,
		store:   store,
		errs:    form.NewFieldErrors(form.LoginFields...),
	}
}

// Submit validates the credentials and logs in.
func (f *LoginForm) Submit(ctx context.Context, draft form.LoginDraft) (Outcome, error) {
	f.draft = draft
	creds, errs := form.ValidateLogin(draft)
	f.errs = errs
	if !errs.Valid() {
		return Outcome{}, ErrInvalid
	}
	token, err := f.auth.Login(ctx, creds)
	if err != nil {
		f.notices.Warn(notice.KeyLoginFailed)
		return Outcome{}, fmt.Errorf("login: %w", err)
	}
	status := session.Check(token)
	if !status.Authenticated {
		f.notices.Warn(notice.KeyLoginFailed)
		return Outcome{}, apperrors.New(apperrors.CodeInvalidCredentials, "login returned an empty token")
	}
	if f.store != nil {
		f.store(status.Token)
	}
	f.notices.Success(notice.KeyLoginSucceeded)
	return Outcome{Navigate: routepath.Root}, nil
}

// Draft returns the submitted draft with the password blanked.
func (f *LoginForm) Draft() form.LoginDraft {
	return form.LoginDraft{Username: f.draft.Username}
}

// Errors returns a copy of the field errors.
func (f *LoginForm) Errors() form.FieldErrors {
	return f.errs.Clone()
}
