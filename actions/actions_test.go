package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ds "github.com/oaiiae/huma-contacts/datastores"
)

type deleterFunc func(context.Context, ds.ContactID) error

func (f deleterFunc) Delete(ctx context.Context, id ds.ContactID) error { return f(ctx, id) }

func TestDestroyContact(t *testing.T) {
	var calls []ds.ContactID
	a := &DestroyContact{Contacts: deleterFunc(func(_ context.Context, id ds.ContactID) error {
		calls = append(calls, id)
		return nil
	})}

	redirect, err := a.Handle(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, Redirect{Location: "/"}, redirect)
	assert.Equal(t, []ds.ContactID{"1"}, calls)
}

func TestDestroyContactUnknownID(t *testing.T) {
	store := ds.NewContactsInmem(&ds.Contact{ID: "1", First: "John"})
	a := &DestroyContact{Contacts: store}

	redirect, err := a.Handle(context.Background(), "404")
	require.NoError(t, err)
	assert.Equal(t, "/", redirect.Location)

	redirect, err = a.Handle(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "/", redirect.Location)
	_, err = store.Get(context.Background(), "1")
	assert.ErrorIs(t, err, ds.ErrObjectNotFound)
}

func TestDestroyContactErrors(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	a := &DestroyContact{Contacts: deleterFunc(func(context.Context, ds.ContactID) error {
		calls++
		return boom
	})}

	_, err := a.Handle(context.Background(), "1")
	assert.Same(t, boom, err, "collaborator errors are returned unchanged")
	assert.Equal(t, 1, calls, "no retry")

	_, err = a.Handle(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingContactID)
	assert.Equal(t, 1, calls, "store is not called without an id")
}

func TestToggleFavorite(t *testing.T) {
	ctx := context.Background()
	store := ds.NewContactsInmem(&ds.Contact{ID: "1", First: "John"})
	a := &ToggleFavorite{Contacts: store}

	redirect, err := a.Handle(ctx, "1", true)
	require.NoError(t, err)
	assert.Equal(t, Redirect{Location: "/contacts/1"}, redirect)

	c, err := store.Get(ctx, "1")
	require.NoError(t, err)
	assert.True(t, c.Favorite)

	_, err = a.Handle(ctx, "1", false)
	require.NoError(t, err)
	c, err = store.Get(ctx, "1")
	require.NoError(t, err)
	assert.False(t, c.Favorite)

	_, err = a.Handle(ctx, "2", true)
	assert.ErrorIs(t, err, ds.ErrObjectNotFound)

	_, err = a.Handle(ctx, "", true)
	assert.ErrorIs(t, err, ErrMissingContactID)
}
