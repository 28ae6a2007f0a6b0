package editor

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/louisbranch/megamix/internal/services/admin/form"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
	"github.com/louisbranch/megamix/internal/services/admin/routepath"
	"github.com/louisbranch/megamix/internal/storefront"
)

// CartMessages are the notices raised by the cart form.
var CartMessages = Messages{
	Created: notice.KeyCartCreated,
	Updated: notice.KeyCartUpdated,
	Failed:  notice.KeyCartFailed,
}

// CartEditor owns one cart draft and its line items.
type CartEditor struct {
	lifecycle
	remote  Remote[storefront.Cart]
	now     func() time.Time
	draft   form.CartDraft
	errs    form.FieldErrors
	itemErr form.FieldErrors
}

// NewCartEditor edits cart id, or creates a cart when id is 0. now stamps
// the purchase date on submit and defaults to time.Now.
func NewCartEditor(remote Remote[storefront.Cart], notices notice.Sink, id int, now func() time.Time) *CartEditor {
	if now == nil {
		now = time.Now
	}
	e := &CartEditor{
		remote:  remote,
		now:     now,
		errs:    form.NewFieldErrors(form.CartFields...),
		itemErr: form.NewFieldErrors(form.LineItemFields...),
	}
	e.init(id, notices)
	return e
}

// Open loads the snapshot in edit mode.
func (e *CartEditor) Open(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateLoading {
		return nil
	}
	defer func() { e.state = StateReady }()

	cart, err := e.remote.Get(ctx, e.id)
	if err != nil {
		e.notices.Error(notice.KeyFetchFailed)
		return fmt.Errorf("open cart %d: %w", e.id, err)
	}
	e.draft = form.CartDraftFrom(cart)
	return nil
}

// SetUserID applies the raw user id input.
func (e *CartEditor) SetUserID(raw string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.editable(); err != nil {
		return err
	}
	e.draft.UserID = form.ParseInt(raw)
	e.errs.Clear(form.FieldUserID)
	return nil
}

// AddItem validates the add-item sub-form and appends the line item.
func (e *CartEditor) AddItem(productIDRaw, quantityRaw string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.editable(); err != nil {
		return err
	}
	item, errs := form.ValidateLineItem(form.ParseInt(productIDRaw), form.ParseInt(quantityRaw))
	e.itemErr = errs
	if !errs.Valid() {
		e.notices.Warn(notice.KeyLineItemFixes)
		return ErrInvalid
	}
	e.draft.Items = append(e.draft.Items, item)
	e.errs.Clear(form.FieldProducts)
	return nil
}

// RemoveItem drops the line item at index. Out-of-range indexes are ignored.
func (e *CartEditor) RemoveItem(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.editable(); err != nil {
		return err
	}
	if index < 0 || index >= len(e.draft.Items) {
		return nil
	}
	e.draft.Items = slices.Delete(e.draft.Items, index, index+1)
	e.errs.Clear(form.FieldProducts)
	return nil
}

// Submit checks the user id and line items, stamps today's date and sends
// the cart to the remote authority.
func (e *CartEditor) Submit(ctx context.Context) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.beginSubmit(); err != nil {
		return Outcome{}, err
	}
	defer func() { e.state = StateReady }()

	cart, errs := form.ValidateCart(e.draft)
	if !errs.Valid() {
		e.errs = errs
		switch {
		case errs.Has(form.FieldUserID):
			e.notices.Warn(form.MsgCartUserID)
		case slices.Contains(errs.Get(form.FieldProducts), form.MsgCartItemsRequired):
			e.notices.Warn(form.MsgCartItemsRequired)
		default:
			e.notices.Warn(notice.KeyLineItemFixes)
		}
		return Outcome{}, ErrInvalid
	}
	e.errs = form.NewFieldErrors(form.CartFields...)
	cart.Date = storefront.Today(e.now())
	if e.mode == ModeEdit {
		cart.ID = e.id
	}

	if _, err := submitRemote(ctx, &e.lifecycle, e.remote, cart); err != nil {
		e.notices.Error(CartMessages.Failed)
		return Outcome{}, fmt.Errorf("submit cart: %w", err)
	}
	if e.mode == ModeEdit {
		e.notices.Success(CartMessages.Updated)
		return Outcome{Navigate: routepath.Carts}, nil
	}
	e.draft = form.CartDraft{}
	e.itemErr = form.NewFieldErrors(form.LineItemFields...)
	e.notices.Success(CartMessages.Created)
	return Outcome{}, nil
}

// Draft returns a copy of the current draft.
func (e *CartEditor) Draft() form.CartDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return form.CartDraft{UserID: e.draft.UserID, Items: slices.Clone(e.draft.Items)}
}

// Errors returns a copy of the cart field errors.
func (e *CartEditor) Errors() form.FieldErrors {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errs.Clone()
}

// ItemErrors returns a copy of the add-item sub-form errors.
func (e *CartEditor) ItemErrors() form.FieldErrors {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.itemErr.Clone()
}
