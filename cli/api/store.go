package api

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/oaiiae/huma-contacts/datastores"
)

type StoreOptions struct {
	Driver string `doc:"contacts storage, inmem or sqlite"                    default:"inmem"`
	Path   string `doc:"sqlite database file"                                 default:"contacts.db"`
	Seed   string `doc:"yaml file of contacts loaded into an empty store, none to disable, empty for the built-in ones"`
}

// NewStore opens the store described by options and seeds it when it is empty.
func NewStore(ctx context.Context, options *StoreOptions, logger *slog.Logger) (datastores.ContactsStore, func() error, error) {
	var (
		store  datastores.ContactsStore
		closer = func() error { return nil }
	)
	switch options.Driver {
	case "inmem", "":
		store = datastores.NewContactsInmem()
	case "sqlite":
		s, err := datastores.OpenContactsSQLite(ctx, options.Path)
		if err != nil {
			return nil, nil, err
		}
		store, closer = s, s.Close
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", options.Driver)
	}

	seed, err := seedContacts(options.Seed)
	if err != nil {
		closer()
		return nil, nil, err
	}
	n, err := datastores.Seed(ctx, store, seed)
	if err != nil {
		closer()
		return nil, nil, err
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "store ready",
		slog.String("driver", options.Driver),
		slog.Int("seeded", n),
	)
	return store, closer, nil
}

func seedContacts(option string) ([]*datastores.Contact, error) {
	switch option {
	case "":
		return datastores.DefaultSeed(), nil
	case "none":
		return nil, nil
	}
	f, err := os.Open(option)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return datastores.DecodeSeed(f)
}
