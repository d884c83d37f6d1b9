package datastores

import (
	"context"
	"errors"
	"time"
)

type (
	// ContactID is the raw identifier of a contact, used verbatim in routes.
	ContactID string
	Contact   struct {
		ID        ContactID
		First     string
		Last      string
		Avatar    string
		Twitter   string
		Notes     string
		Favorite  bool
		CreatedAt time.Time
	}
)

// ContactsStore is implemented by [ContactsInmem] and [ContactsSQLite].
//
// List returns contacts in insertion order, keeping those that [Matches] query.
// Put replaces a contact in place or appends it when unknown.
// Delete of an unknown id is not an error.
type ContactsStore interface {
	Create(ctx context.Context, c *Contact) (ContactID, error)
	List(ctx context.Context, query string) ([]*Contact, error)
	Get(ctx context.Context, id ContactID) (*Contact, error)
	Put(ctx context.Context, c *Contact) error
	Delete(ctx context.Context, id ContactID) error
}

var (
	ErrObjectNotFound = errors.New("store: object not found")
	ErrObjectExists   = errors.New("store: object already exists")
)

func (c *Contact) clone() *Contact { v := *c; return &v }
