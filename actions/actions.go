// Package actions holds the mutations triggered from the contact pages.
// Each action returns where the client should be sent next; performing the
// redirect is left to the caller.
package actions

import (
	"context"
	"errors"

	ds "github.com/oaiiae/huma-contacts/datastores"
	"github.com/oaiiae/huma-contacts/views"
)

// Redirect is the location the client should navigate to after an action.
type Redirect struct {
	Location string
}

var ErrMissingContactID = errors.New("actions: missing contact id")

type Deleter interface {
	Delete(ctx context.Context, id ds.ContactID) error
}

// DestroyContact deletes a contact and sends the client back to the root view.
type DestroyContact struct {
	Contacts Deleter
}

// Handle returns any error from the store as is.
func (a *DestroyContact) Handle(ctx context.Context, contactID string) (Redirect, error) {
	if contactID == "" {
		return Redirect{}, ErrMissingContactID
	}
	if err := a.Contacts.Delete(ctx, ds.ContactID(contactID)); err != nil {
		return Redirect{}, err
	}
	return Redirect{Location: "/"}, nil
}

type GetPutter interface {
	Get(ctx context.Context, id ds.ContactID) (*ds.Contact, error)
	Put(ctx context.Context, c *ds.Contact) error
}

// ToggleFavorite sets the favorite flag of a contact and sends the client
// back to its detail view.
type ToggleFavorite struct {
	Contacts GetPutter
}

func (a *ToggleFavorite) Handle(ctx context.Context, contactID string, favorite bool) (Redirect, error) {
	if contactID == "" {
		return Redirect{}, ErrMissingContactID
	}
	c, err := a.Contacts.Get(ctx, ds.ContactID(contactID))
	if err != nil {
		return Redirect{}, err
	}
	c.Favorite = favorite
	if err = a.Contacts.Put(ctx, c); err != nil {
		return Redirect{}, err
	}
	return Redirect{Location: views.ContactPath(c.ID)}, nil
}
