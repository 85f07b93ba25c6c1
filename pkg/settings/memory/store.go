package memory

import (
	"codeberg.org/miketth/hyprtint/pkg/settings"
	"fmt"
)

type Store struct {
	data     []byte
	ReadErr  error
	WriteErr error
	Writes   int
}

func NewStore() *Store {
	return &Store{}
}

func NewStoreWith(data []byte) *Store {
	return &Store{data: append([]byte(nil), data...)}
}

func (s *Store) Read() ([]byte, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	if s.data == nil {
		return nil, fmt.Errorf("%w: memory store is empty", settings.ErrNotFound)
	}
	return append([]byte(nil), s.data...), nil
}

func (s *Store) Write(data []byte) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.data = append([]byte(nil), data...)
	s.Writes++
	return nil
}

func (s *Store) Bytes() []byte {
	return s.data
}
