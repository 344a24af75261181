package profile

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-zoox/gztunnel/id"
	"github.com/go-zoox/gztunnel/manager"
)

var ErrNotFound = errors.New("profile not found")

// Store keeps profiles by id. A new store holds only the default profile.
type Store struct {
	profiles *manager.Manager[*Profile]
}

func NewStore() *Store {
	s := &Store{
		profiles: manager.New[*Profile](),
	}
	s.profiles.Set(DefaultID, Default())
	return s
}

// Add validates p and saves a copy of it, assigning an id when p has none.
// An existing profile with the same id is replaced.
func (s *Store) Add(p *Profile) (*Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	np := p.Clone()
	if np.ID == "" {
		np.ID = id.Generate()
	}
	if np.Name == "" {
		np.Name = np.Address()
	}

	if err := s.profiles.Set(np.ID, np); err != nil {
		return nil, err
	}

	return np.Clone(), nil
}

func (s *Store) Get(profileID string) (*Profile, error) {
	p, err := s.profiles.Get(profileID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, profileID)
	}

	return p.Clone(), nil
}

// Find looks a profile up by id first, then by name.
func (s *Store) Find(key string) (*Profile, error) {
	if p, err := s.Get(key); err == nil {
		return p, nil
	}

	for _, p := range s.List() {
		if p.Name == key {
			return p, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
}

func (s *Store) Remove(profileID string) error {
	if err := s.profiles.Remove(profileID); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, profileID)
	}

	return nil
}

// List returns every profile sorted by name, then id.
func (s *Store) List() []*Profile {
	var list []*Profile
	for _, key := range s.profiles.Keys() {
		if p, err := s.profiles.Get(key); err == nil {
			list = append(list, p.Clone())
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Name == list[j].Name {
			return list[i].ID < list[j].ID
		}
		return list[i].Name < list[j].Name
	})

	return list
}

// Reset drops every profile and restores the default one.
func (s *Store) Reset() {
	for _, key := range s.profiles.Keys() {
		s.profiles.Remove(key)
	}

	s.profiles.Set(DefaultID, Default())
}
