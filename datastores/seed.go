package datastores

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Contacts []struct {
		ID       string `yaml:"id"`
		First    string `yaml:"first"`
		Last     string `yaml:"last"`
		Avatar   string `yaml:"avatar"`
		Twitter  string `yaml:"twitter"`
		Notes    string `yaml:"notes"`
		Favorite bool   `yaml:"favorite"`
	} `yaml:"contacts"`
}

// DecodeSeed reads contacts from a yaml document of the form:
//
//	contacts:
//	  - first: Shruti
//	    last: Kapoor
//	    favorite: true
func DecodeSeed(r io.Reader) ([]*Contact, error) {
	var f seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	contacts := make([]*Contact, 0, len(f.Contacts))
	for _, c := range f.Contacts {
		contacts = append(contacts, &Contact{
			ID:       ContactID(c.ID),
			First:    c.First,
			Last:     c.Last,
			Avatar:   c.Avatar,
			Twitter:  c.Twitter,
			Notes:    c.Notes,
			Favorite: c.Favorite,
		})
	}
	return contacts, nil
}

// DefaultSeed returns the built-in contacts.
func DefaultSeed() []*Contact {
	contacts, err := DecodeSeed(bytes.NewReader(defaultSeed))
	if err != nil {
		panic(err)
	}
	return contacts
}

// Seed creates contacts in store when it holds none. It reports how many were created.
func Seed(ctx context.Context, store ContactsStore, contacts []*Contact) (int, error) {
	existing, err := store.List(ctx, "")
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i, c := range contacts {
		if _, err = store.Create(ctx, c); err != nil {
			return i, fmt.Errorf("seed contact %d: %w", i, err)
		}
	}
	return len(contacts), nil
}
