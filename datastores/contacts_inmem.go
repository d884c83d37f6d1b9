package datastores

import (
	"context"
	"slices"
	"sync"
	"time"
)

// ContactsInmem implements [ContactsStore].
type ContactsInmem struct {
	mu       sync.Mutex
	index    map[ContactID]int
	contacts []*Contact
	now      func() time.Time
}

var _ ContactsStore = (*ContactsInmem)(nil)

func NewContactsInmem(cs ...*Contact) *ContactsInmem {
	s := &ContactsInmem{index: make(map[ContactID]int, len(cs)), now: time.Now}
	for _, c := range cs {
		_, _ = s.create(c.clone())
	}
	return s
}

func (s *ContactsInmem) Create(_ context.Context, c *Contact) (ContactID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.create(c.clone())
}

func (s *ContactsInmem) create(c *Contact) (ContactID, error) {
	if c.ID == "" {
	retry:
		c.ID = newContactID()
		if _, loaded := s.index[c.ID]; loaded {
			goto retry
		}
	} else if _, loaded := s.index[c.ID]; loaded {
		return "", ErrObjectExists
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	s.index[c.ID] = len(s.contacts)
	s.contacts = append(s.contacts, c)
	return c.ID, nil
}

func (s *ContactsInmem) List(_ context.Context, query string) ([]*Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	contacts := make([]*Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if Matches(c, query) {
			contacts = append(contacts, c.clone())
		}
	}
	return contacts, nil
}

func (s *ContactsInmem) Get(_ context.Context, id ContactID) (*Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index, ok := s.index[id]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return s.contacts[index].clone(), nil
}

func (s *ContactsInmem) Put(_ context.Context, c *Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	index, ok := s.index[c.ID]
	if !ok || c.ID == "" {
		_, err := s.create(c.clone())
		return err
	}
	c = c.clone()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.contacts[index].CreatedAt
	}
	s.contacts[index] = c
	return nil
}

func (s *ContactsInmem) Delete(_ context.Context, id ContactID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	index, ok := s.index[id]
	if !ok {
		return nil
	}
	delete(s.index, id)
	s.contacts = slices.Delete(s.contacts, index, index+1)
	for i := index; i < len(s.contacts); i++ {
		s.index[s.contacts[i].ID] = i
	}
	return nil
}
