package editor

import (
	"context"
	"fmt"

	"github.com/louisbranch/megamix/internal/services/admin/form"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
	"github.com/louisbranch/megamix/internal/services/admin/routepath"
	"github.com/louisbranch/megamix/internal/storefront"
)

// ProductMessages are the notices raised by the product form.
var ProductMessages = Messages{
	Created: notice.KeyProductCreated,
	Updated: notice.KeyProductUpdated,
	Failed:  notice.KeyProductFailed,
}

// ProductEditor owns one product draft.
type ProductEditor struct {
	lifecycle
	remote   Remote[storefront.Product]
	draft    form.ProductDraft
	snapshot storefront.Product
	errs     form.FieldErrors
}

// NewProductEditor edits product id, or creates a product when id is 0.
func NewProductEditor(remote Remote[storefront.Product], notices notice.Sink, id int) *ProductEditor {
	e := &ProductEditor{remote: remote, errs: form.NewFieldErrors(form.ProductFields...)}
	e.init(id, notices)
	return e
}

// Open loads the snapshot in edit mode. A failed fetch keeps the defaults
// and still leaves the form ready.
func (e *ProductEditor) Open(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateLoading {
		return nil
	}
	defer func() { e.state = StateReady }()

	product, err := e.remote.Get(ctx, e.id)
	if err != nil {
		e.notices.Error(notice.KeyFetchFailed)
		return fmt.Errorf("open product %d: %w", e.id, err)
	}
	e.snapshot = product
	e.draft = form.ProductDraftFrom(product)
	return nil
}

// SetField applies raw input to one field and clears its errors.
func (e *ProductEditor) SetField(name, raw string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.editable(); err != nil {
		return err
	}
	switch name {
	case form.FieldTitle:
		e.draft.Title = raw
	case form.FieldPrice:
		e.draft.Price = form.ParseNumber(raw)
	case form.FieldDescription:
		e.draft.Description = raw
	case form.FieldCategory:
		e.draft.Category = raw
	case form.FieldImage:
		e.draft.Image = raw
	default:
		return fmt.Errorf("unknown product field %q", name)
	}
	e.errs.Clear(name)
	return nil
}

// Submit validates the draft and sends it to the remote authority.
func (e *ProductEditor) Submit(ctx context.Context) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.beginSubmit(); err != nil {
		return Outcome{}, err
	}
	defer func() { e.state = StateReady }()

	product, errs := form.ValidateProduct(e.draft)
	if !errs.Valid() {
		e.errs = errs
		return Outcome{}, ErrInvalid
	}
	e.errs = form.NewFieldErrors(form.ProductFields...)
	if e.mode == ModeEdit {
		product.ID = e.id
		product.Rating = e.snapshot.Rating
	}

	if _, err := submitRemote(ctx, &e.lifecycle, e.remote, product); err != nil {
		e.notices.Error(ProductMessages.Failed)
		return Outcome{}, fmt.Errorf("submit product: %w", err)
	}
	if e.mode == ModeEdit {
		e.notices.Success(ProductMessages.Updated)
		return Outcome{Navigate: routepath.Products}, nil
	}
	e.draft = form.ProductDraft{}
	e.notices.Success(ProductMessages.Created)
	return Outcome{}, nil
}

// Draft returns the current draft.
func (e *ProductEditor) Draft() form.ProductDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// Errors returns a copy of the field errors.
func (e *ProductEditor) Errors() form.FieldErrors {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errs.Clone()
}
