package editor

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/louisbranch/megamix/internal/services/admin/form"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
	"github.com/louisbranch/megamix/internal/storefront"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 16, 15, 4, 5, 0, time.UTC)
}

func TestCartSubmitRejectsMissingUser(t *testing.T) {
	t.Parallel()

	remote := &fakeRemote[storefront.Cart]{}
	rec := &notice.Recorder{}
	e := NewCartEditor(remote, rec, 0, fixedClock)
	if err := e.SetUserID("0"); err != nil {
		t.Fatalf("SetUserID() error = %v", err)
	}

	if _, err := e.Submit(context.Background()); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Submit() error = %v, want ErrInvalid", err)
	}
	if remote.calls() != 0 {
		t.Fatalf("remote calls = %d, want 0", remote.calls())
	}
	want := []notice.Notice{{Kind: notice.KindWarning, Key: form.MsgCartUserID}}
	if got := rec.Notices(); !reflect.DeepEqual(got, want) {
		t.Fatalf("notices = %v, want %v", got, want)
	}
	if !e.Errors().Has(form.FieldUserID) {
		t.Fatal("expected userId error")
	}
}

func TestCartSubmitRejectsEmptyItems(t *testing.T) {
	t.Parallel()

	remote := &fakeRemote[storefront.Cart]{}
	rec := &notice.Recorder{}
	e := NewCartEditor(remote, rec, 0, fixedClock)
	_ = e.SetUserID("3")

	if _, err := e.Submit(context.Background()); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Submit() error = %v, want ErrInvalid", err)
	}
	if remote.calls() != 0 {
		t.Fatalf("remote calls = %d", remote.calls())
	}
	if got := rec.Notices(); len(got) != 1 || got[0].Key != form.MsgCartItemsRequired {
		t.Fatalf("notices = %v", got)
	}
}

func TestCartEditFailureKeepsDraft(t *testing.T) {
	t.Parallel()

	remote := &fakeRemote[storefront.Cart]{
		current: storefront.Cart{ID: 42, UserID: 3, Date: "2020-03-02", Products: []storefront.LineItem{{ProductID: 7, Quantity: 2}}},
		err:     errRemote,
	}
	rec := &notice.Recorder{}
	e := NewCartEditor(remote, rec, 42, fixedClock)
	if err := e.Open(context.Background()); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	before := e.Draft()

	outcome, err := e.Submit(context.Background())
	if !errors.Is(err, errRemote) {
		t.Fatalf("Submit() error = %v", err)
	}
	if outcome.Navigate != "" {
		t.Fatalf("Navigate = %q, want none", outcome.Navigate)
	}
	if got := e.Draft(); !reflect.DeepEqual(got, before) {
		t.Fatalf("Draft() = %+v, want %+v", got, before)
	}
	if e.Mode() != ModeEdit || e.ID() != 42 {
		t.Fatalf("mode/id = %v/%d", e.Mode(), e.ID())
	}
	if got := rec.Notices(); len(got) != 1 || got[0] != (notice.Notice{Kind: notice.KindError, Key: notice.KeyCartFailed}) {
		t.Fatalf("notices = %v", got)
	}
	updates := remote.updates[42]
	if len(updates) != 1 || updates[0].Date != "2026-10-16" || updates[0].UserID != 3 {
		t.Fatalf("updates = %+v", updates)
	}
}

func TestCartCreateStampsDateAndResets(t *testing.T) {
	t.Parallel()

	remote := &fakeRemote[storefront.Cart]{}
	e := NewCartEditor(remote, nil, 0, fixedClock)
	_ = e.SetUserID("5")
	if err := e.AddItem("1", "4"); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	outcome, err := e.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if outcome.Navigate != "" {
		t.Fatalf("Navigate = %q", outcome.Navigate)
	}
	want := []storefront.Cart{{UserID: 5, Date: "2026-10-16", Products: []storefront.LineItem{{ProductID: 1, Quantity: 4}}}}
	if !reflect.DeepEqual(remote.creates, want) {
		t.Fatalf("creates = %+v, want %+v", remote.creates, want)
	}
	if got := e.Draft(); got.UserID != 0 || len(got.Items) != 0 {
		t.Fatalf("Draft() = %+v, want defaults", got)
	}
}

func TestCartAddItemValidatesSubForm(t *testing.T) {
	t.Parallel()

	rec := &notice.Recorder{}
	e := NewCartEditor(&fakeRemote[storefront.Cart]{}, rec, 0, fixedClock)

	if err := e.AddItem("x", "0"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("AddItem() error = %v", err)
	}
	itemErrs := e.ItemErrors()
	if !itemErrs.Has(form.FieldProductID) || !itemErrs.Has(form.FieldQuantity) {
		t.Fatalf("item errors = %v", itemErrs)
	}
	if len(e.Draft().Items) != 0 {
		t.Fatal("invalid item must not be appended")
	}
	if got := rec.Notices(); len(got) != 1 || got[0].Kind != notice.KindWarning {
		t.Fatalf("notices = %v", got)
	}

	if err := e.AddItem("2", "1"); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if e.ItemErrors().Has(form.FieldProductID) {
		t.Fatal("valid add should clear sub-form errors")
	}
}

func TestCartRemoveItem(t *testing.T) {
	t.Parallel()

	e := NewCartEditor(&fakeRemote[storefront.Cart]{}, nil, 0, fixedClock)
	for _, id := range []string{"1", "2", "3"} {
		if err := e.AddItem(id, "1"); err != nil {
			t.Fatalf("AddItem(%s) error = %v", id, err)
		}
	}
	if err := e.RemoveItem(1); err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if err := e.RemoveItem(7); err != nil {
		t.Fatalf("RemoveItem(out of range) error = %v", err)
	}
	if err := e.RemoveItem(-1); err != nil {
		t.Fatalf("RemoveItem(negative) error = %v", err)
	}
	want := []storefront.LineItem{{ProductID: 1, Quantity: 1}, {ProductID: 3, Quantity: 1}}
	if got := e.Draft().Items; !reflect.DeepEqual(got, want) {
		t.Fatalf("Items = %+v, want %+v", got, want)
	}
}
