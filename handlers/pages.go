package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/net/html"

	"github.com/oaiiae/huma-contacts/actions"
	ds "github.com/oaiiae/huma-contacts/datastores"
	"github.com/oaiiae/huma-contacts/views"
)

// Pages serves the HTML views of the contacts and the form actions posted from them.
type Pages struct {
	Store        ds.ContactsStore
	ErrorHandler func(context.Context, error)
}

type HTMLOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type RedirectOutput struct {
	Status   int
	Location string `header:"Location"`
}

func redirect(r actions.Redirect) *RedirectOutput {
	return &RedirectOutput{Status: http.StatusSeeOther, Location: r.Location}
}

func (h *Pages) RegisterIndex(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/",
		handlerWithErrorHandler(h.index, h.ErrorHandler),
		opHidden,
	)
}

func (h *Pages) index(ctx context.Context, input *struct {
	Q          string `query:"q"          doc:"Filter contacts by name"`
	Navigation string `query:"navigation" doc:"Navigation state" enum:"idle,loading,submitting" default:"idle"`
}) (*HTMLOutput, error) {
	return h.render(ctx, input.Q, input.Navigation, "", views.Index())
}

func (h *Pages) RegisterContact(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/contacts/{contactId}",
		handlerWithErrorHandler(h.contact, h.ErrorHandler),
		opHidden,
	)
}

func (h *Pages) contact(ctx context.Context, input *struct {
	ContactID  ds.ContactID `path:"contactId"`
	Q          string       `query:"q"          doc:"Filter contacts by name"`
	Navigation string       `query:"navigation" doc:"Navigation state" enum:"idle,loading,submitting" default:"idle"`
}) (*HTMLOutput, error) {
	contact, err := h.Store.Get(ctx, input.ContactID)
	if err != nil {
		return nil, statusError(err)
	}
	return h.render(ctx, input.Q, input.Navigation, views.ContactPath(contact.ID), views.ContactDetail(contact))
}

func (h *Pages) render(ctx context.Context, q, navigation, active string, detail *html.Node) (*HTMLOutput, error) {
	contacts, err := h.Store.List(ctx, q)
	if err != nil {
		return nil, err
	}

	state := views.ParseNavState(navigation)
	var buf bytes.Buffer
	err = views.Write(&buf, views.Page(views.PageData{
		Title:  "Contacts",
		Query:  q,
		State:  state,
		Nav:    views.ContactNav(contacts, state, views.WithActivePath(active)),
		Detail: detail,
	}))
	if err != nil {
		return nil, err
	}
	return &HTMLOutput{ContentType: "text/html; charset=utf-8", Body: buf.Bytes()}, nil
}

func (h *Pages) RegisterDestroy(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/contacts/{contactId}/destroy",
		handlerWithErrorHandler(h.destroy, h.ErrorHandler),
		opHidden,
		func(o *huma.Operation) { o.DefaultStatus = http.StatusSeeOther },
	)
}

func (h *Pages) destroy(ctx context.Context, input *struct {
	ContactID string `path:"contactId"`
}) (*RedirectOutput, error) {
	r, err := (&actions.DestroyContact{Contacts: h.Store}).Handle(ctx, input.ContactID)
	if err != nil {
		return nil, statusError(err)
	}
	return redirect(r), nil
}

func (h *Pages) RegisterFavorite(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/contacts/{contactId}/favorite",
		handlerWithErrorHandler(h.favorite, h.ErrorHandler),
		opHidden,
		func(o *huma.Operation) { o.DefaultStatus = http.StatusSeeOther },
	)
}

func (h *Pages) favorite(ctx context.Context, input *struct {
	ContactID string `path:"contactId"`
	RawBody   []byte
}) (*RedirectOutput, error) {
	form, err := url.ParseQuery(string(input.RawBody))
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid form", err)
	}
	favorite, err := strconv.ParseBool(form.Get("favorite"))
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid favorite value", err)
	}

	r, err := (&actions.ToggleFavorite{Contacts: h.Store}).Handle(ctx, input.ContactID, favorite)
	if err != nil {
		return nil, statusError(err)
	}
	return redirect(r), nil
}
