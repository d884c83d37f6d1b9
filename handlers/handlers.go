package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/oaiiae/huma-contacts/actions"
	ds "github.com/oaiiae/huma-contacts/datastores"
)

type handler[I, O any] = func(context.Context, *I) (*O, error)

func handlerWithErrorHandler[I, O any](handler handler[I, O], do func(context.Context, error)) handler[I, O] {
	if do == nil {
		return handler
	}

	return func(ctx context.Context, i *I) (*O, error) {
		o, err := handler(ctx, i)
		if err != nil {
			do(ctx, err)
		}
		return o, err
	}
}

func opErrors(codes ...int) func(*huma.Operation) {
	return func(o *huma.Operation) { o.Errors = codes }
}

func opHidden(o *huma.Operation) { o.Hidden = true }

// statusError maps the sentinel errors of stores and actions to HTTP errors.
// Other errors are returned unchanged.
func statusError(err error) error {
	switch {
	case errors.Is(err, ds.ErrObjectNotFound):
		return huma.Error404NotFound("id not found", err)
	case errors.Is(err, ds.ErrObjectExists):
		return huma.Error409Conflict("id already exists", err)
	case errors.Is(err, actions.ErrMissingContactID):
		return huma.Error400BadRequest("missing contact id", err)
	default:
		return err
	}
}
