package editor

import (
	"context"
	"fmt"

	"github.com/louisbranch/megamix/internal/services/admin/form"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
	"github.com/louisbranch/megamix/internal/services/admin/routepath"
	"github.com/louisbranch/megamix/internal/storefront"
)

// UserMessages are the notices raised by the user form.
var UserMessages = Messages{
	Created: notice.KeyUserCreated,
	Updated: notice.KeyUserUpdated,
	Failed:  notice.KeyUserFailed,
}

// UserEditor owns one user draft.
type UserEditor struct {
	lifecycle
	remote Remote[storefront.User]
	draft  form.UserDraft
	errs   form.FieldErrors
}

// NewUserEditor edits user id, or creates a user when id is 0.
func NewUserEditor(remote Remote[storefront.User], notices notice.Sink, id int) *UserEditor {
	e := &UserEditor{remote: remote, errs: form.NewFieldErrors(form.UserFields...)}
	e.init(id, notices)
	return e
}

// Open loads the snapshot in edit mode.
func (e *UserEditor) Open(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateLoading {
		return nil
	}
	defer func() { e.state = StateReady }()

	user, err := e.remote.Get(ctx, e.id)
	if err != nil {
		e.notices.Error(notice.KeyFetchFailed)
		return fmt.Errorf("open user %d: %w", e.id, err)
	}
	e.draft = form.UserDraftFrom(user)
	return nil
}

// SetField applies raw input to one field and clears its errors.
func (e *UserEditor) SetField(name, raw string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.editable(); err != nil {
		return err
	}
	field := userField(&e.draft, name)
	if field == nil {
		return fmt.Errorf("unknown user field %q", name)
	}
	*field = raw
	e.errs.Clear(name)
	return nil
}

func userField(d *form.UserDraft, name string) *string {
	switch name {
	case form.FieldUsername:
		return &d.Username
	case form.FieldEmail:
		return &d.Email
	case form.FieldPassword:
		return &d.Password
	case form.FieldFirstname:
		return &d.Firstname
	case form.FieldLastname:
		return &d.Lastname
	case form.FieldPhone:
		return &d.Phone
	case form.FieldCity:
		return &d.City
	case form.FieldStreet:
		return &d.Street
	case form.FieldNumber:
		return &d.Number
	case form.FieldZipcode:
		return &d.Zipcode
	case form.FieldLat:
		return &d.Lat
	case form.FieldLong:
		return &d.Long
	}
	return nil
}

// Submit validates the draft and sends it to the remote authority.
func (e *UserEditor) Submit(ctx context.Context) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.beginSubmit(); err != nil {
		return Outcome{}, err
	}
	defer func() { e.state = StateReady }()

	user, errs := form.ValidateUser(e.draft)
	if !errs.Valid() {
		e.errs = errs
		return Outcome{}, ErrInvalid
	}
	e.errs = form.NewFieldErrors(form.UserFields...)
	if e.mode == ModeEdit {
		user.ID = e.id
	}

	if _, err := submitRemote(ctx, &e.lifecycle, e.remote, user); err != nil {
		e.notices.Error(UserMessages.Failed)
		return Outcome{}, fmt.Errorf("submit user: %w", err)
	}
	if e.mode == ModeEdit {
		e.notices.Success(UserMessages.Updated)
		return Outcome{Navigate: routepath.Users}, nil
	}
	e.draft = form.UserDraft{}
	e.notices.Success(UserMessages.Created)
	return Outcome{}, nil
}

// Draft returns the current draft.
func (e *UserEditor) Draft() form.UserDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// Errors returns a copy of the field errors.
func (e *UserEditor) Errors() form.FieldErrors {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errs.Clone()
}
