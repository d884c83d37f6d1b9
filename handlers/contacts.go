package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	ds "github.com/oaiiae/huma-contacts/datastores"
)

type Contacts struct {
	Store        ds.ContactsStore
	ErrorHandler func(context.Context, error)
}

type ContactModel struct {
	ID ds.ContactID `json:"id" readOnly:"true"`

	First     string    `json:"first,omitempty"   example:"john"`
	Last      string    `json:"last,omitempty"    example:"smith"`
	Avatar    string    `json:"avatar,omitempty"  example:"https://example.com/john.png"`
	Twitter   string    `json:"twitter,omitempty" example:"@johnsmith"`
	Notes     string    `json:"notes,omitempty"`
	Favorite  bool      `json:"favorite"          required:"false"`
	CreatedAt time.Time `json:"createdAt"         readOnly:"true"`
}

func newContactModel(c *ds.Contact) ContactModel {
	return ContactModel{
		ID:        c.ID,
		First:     c.First,
		Last:      c.Last,
		Avatar:    c.Avatar,
		Twitter:   c.Twitter,
		Notes:     c.Notes,
		Favorite:  c.Favorite,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContactModel) contact(id ds.ContactID) *ds.Contact {
	return &ds.Contact{
		ID:       id,
		First:    m.First,
		Last:     m.Last,
		Avatar:   m.Avatar,
		Twitter:  m.Twitter,
		Notes:    m.Notes,
		Favorite: m.Favorite,
	}
}

func (h *Contacts) RegisterList(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/",
		handlerWithErrorHandler(h.list, h.ErrorHandler),
		opErrors(http.StatusInternalServerError),
	)
}

type ContactsListOutput struct {
	Body []ContactModel
}

func (h *Contacts) list(ctx context.Context, input *struct {
	Q string `query:"q" doc:"Filter contacts by name"`
}) (*ContactsListOutput, error) {
	contacts, err := h.Store.List(ctx, input.Q)
	if err != nil {
		return nil, err
	}

	body := make([]ContactModel, 0, len(contacts))
	for _, contact := range contacts {
		body = append(body, newContactModel(contact))
	}

	return &ContactsListOutput{Body: body}, nil
}

func (h *Contacts) RegisterCreate(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/",
		handlerWithErrorHandler(h.create, h.ErrorHandler),
		opErrors(http.StatusInternalServerError),
		func(o *huma.Operation) { o.DefaultStatus = http.StatusCreated },
	)
}

type ContactsCreateOutput struct {
	Body ContactModel
}

func (h *Contacts) create(ctx context.Context, input *struct {
	Body ContactModel
}) (*ContactsCreateOutput, error) {
	contact := input.Body.contact("")
	id, err := h.Store.Create(ctx, contact)
	if err != nil {
		return nil, statusError(err)
	}

	created, err := h.Store.Get(ctx, id)
	if err != nil {
		return nil, statusError(err)
	}
	return &ContactsCreateOutput{Body: newContactModel(created)}, nil
}

func (h *Contacts) RegisterGet(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/{id}",
		handlerWithErrorHandler(h.get, h.ErrorHandler),
		opErrors(http.StatusNotFound, http.StatusInternalServerError),
	)
}

type ContactsGetOutput struct {
	Body ContactModel
}

func (h *Contacts) get(ctx context.Context, input *struct {
	ID ds.ContactID `path:"id" doc:"ID of the contact to get"`
}) (*ContactsGetOutput, error) {
	contact, err := h.Store.Get(ctx, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	return &ContactsGetOutput{Body: newContactModel(contact)}, nil
}

func (h *Contacts) RegisterPut(api huma.API) { // called by [huma.AutoRegister]
	huma.Put(api, "/{id}",
		handlerWithErrorHandler(h.put, h.ErrorHandler),
		opErrors(http.StatusInternalServerError),
	)
}

func (h *Contacts) put(ctx context.Context, input *struct {
	ID   ds.ContactID `path:"id" doc:"ID of the contact to put"`
	Body ContactModel
}) (*struct{}, error) {
	return nil, statusError(h.Store.Put(ctx, input.Body.contact(input.ID)))
}

func (h *Contacts) RegisterDel(api huma.API) { // called by [huma.AutoRegister]
	huma.Delete(api, "/{id}",
		handlerWithErrorHandler(h.del, h.ErrorHandler),
		opErrors(http.StatusInternalServerError),
	)
}

func (h *Contacts) del(ctx context.Context, input *struct {
	ID ds.ContactID `path:"id" doc:"ID of the contact to delete"`
}) (*struct{}, error) {
	return nil, h.Store.Delete(ctx, input.ID)
}
