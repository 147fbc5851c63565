package service

import (
	"context"
	"errors"

	"github.com/motorent/internal/store"
)

// ListState 表示列表编辑器当前所处的状态。
type ListState int

const (
	// StateViewing: list displayed, no form open.
	StateViewing ListState = iota
	// StateCreating: blank-template form open, no identity assigned yet.
	StateCreating
	// StateEditing: form open, pre-populated, identity remembered.
	StateEditing
)

var (
	// ErrNoFormOpen 表示当前没有处于编辑或新建状态。
	ErrNoFormOpen = errors.New("no form is open")
	// ErrFormAlreadyOpen 表示已有表单在编辑中。
	ErrFormAlreadyOpen = errors.New("a form is already open")
)

// ListResource describes one CRUD collection: where it lives on the store,
// how a member is addressed, and the presence-only validation the client
// performs before a write. Richer validation is the store's job.
type ListResource[T any] struct {
	// Path is the collection path on the content store.
	Path string
	// Key extracts the member's routing key (slug or numeric id as string).
	Key func(T) string
	// Validate performs presence-only checks; nil means no client checks.
	Validate func(T) error
	// OnCreate runs once before a create is submitted, for client-assigned
	// identity such as slug derivation. Never run on update.
	OnCreate func(*T)
}

// ListController is the shared add/edit/delete state machine behind every
// list-type entity. A successful mutation always hands authority back to the
// store: the list is refreshed from a full re-fetch, never patched locally.
type ListController[T any] struct {
	store    *store.Client
	resource ListResource[T]

	state   ListState
	items   []T
	buffer  T
	editKey string
}

// NewListController constructs a controller in the Viewing state with an
// empty list; call Refresh to populate it.
func NewListController[T any](client *store.Client, resource ListResource[T]) *ListController[T] {
	return &ListController[T]{store: client, resource: resource}
}

// State returns the controller's current state.
func (l *ListController[T]) State() ListState { return l.state }

// Items returns the last list fetched from the store.
func (l *ListController[T]) Items() []T { return l.items }

// Buffer returns a copy of the open form buffer.
func (l *ListController[T]) Buffer() T { return l.buffer }

// EditKey returns the remembered identity key while editing.
func (l *ListController[T]) EditKey() string { return l.editKey }

// Refresh replaces the local list with a full re-fetch from the store.
func (l *ListController[T]) Refresh(ctx context.Context) error {
	items, err := store.List[T](ctx, l.store, l.resource.Path)
	if err != nil {
		return err
	}
	l.items = items
	return nil
}

// BeginCreate opens a blank form: the buffer is reset to the zero value and
// no identity is assigned.
func (l *ListController[T]) BeginCreate() error {
	if l.state != StateViewing {
		return ErrFormAlreadyOpen
	}
	var zero T
	l.buffer = zero
	l.editKey = ""
	l.state = StateCreating
	return nil
}

// BeginEdit opens the form pre-populated with a shallow copy of member. The
// identity key is remembered separately from the buffer, so renaming a
// display field never loses the routing key.
func (l *ListController[T]) BeginEdit(member T) error {
	return l.BeginEditKeyed(l.resource.Key(member), member)
}

// BeginEditKeyed opens the form for member under an explicitly supplied
// routing key, for callers that carry the key out of band.
func (l *ListController[T]) BeginEditKeyed(key string, member T) error {
	if l.state != StateViewing {
		return ErrFormAlreadyOpen
	}
	l.buffer = member
	l.editKey = key
	l.state = StateEditing
	return nil
}

// MutateBuffer applies a field-level edit to the open form buffer.
func (l *ListController[T]) MutateBuffer(mutate func(*T)) error {
	if l.state == StateViewing {
		return ErrNoFormOpen
	}
	mutate(&l.buffer)
	return nil
}

// Cancel discards the open form with no network call.
func (l *ListController[T]) Cancel() {
	var zero T
	l.buffer = zero
	l.editKey = ""
	l.state = StateViewing
}

// Submit sends the open form to the store: POST with no identity in the path
// when creating, PUT addressed by the remembered key when editing. On success
// the controller returns to Viewing and the list is re-fetched in full; the
// buffer is never merged into the local list, so server-assigned fields are
// always reflected. On failure the form stays open for another attempt.
func (l *ListController[T]) Submit(ctx context.Context) error {
	switch l.state {
	case StateCreating:
		if err := l.validate(); err != nil {
			return err
		}
		if l.resource.OnCreate != nil {
			l.resource.OnCreate(&l.buffer)
		}
		if _, err := store.Create[T](ctx, l.store, l.resource.Path, l.buffer); err != nil {
			return err
		}
	case StateEditing:
		if err := l.validate(); err != nil {
			return err
		}
		if _, err := store.Update[T](ctx, l.store, l.resource.Path, l.editKey, l.buffer); err != nil {
			return err
		}
	default:
		return ErrNoFormOpen
	}

	l.Cancel()
	return l.Refresh(ctx)
}

// Delete removes the member addressed by key after the confirmation gate
// affirms. Declining is a no-op with no state change. On success the list is
// re-fetched so the local view never holds the deleted member.
func (l *ListController[T]) Delete(ctx context.Context, key string, confirm func() bool) (bool, error) {
	if confirm != nil && !confirm() {
		return false, nil
	}
	if err := store.Remove(ctx, l.store, l.resource.Path, key); err != nil {
		return false, err
	}
	return true, l.Refresh(ctx)
}

func (l *ListController[T]) validate() error {
	if l.resource.Validate == nil {
		return nil
	}
	return l.resource.Validate(l.buffer)
}
