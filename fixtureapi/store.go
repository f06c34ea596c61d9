// Package fixtureapi serves a users API from a YAML fixture file.
//
// It speaks the same wire format as the public users API, so the client can be
// pointed at it for development and for end-to-end tests:
//
//	GET /users      -> all fixture users, in file order
//	GET /users/:id  -> one fixture user, 404 when unknown, 400 when the id is not an integer
//
// Both routes are use cases served through the forward package.
package fixtureapi

import (
	"fmt"
	"os"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/userbook/dto"
	"github.com/rise-and-shine/userbook/val"
	"gopkg.in/yaml.v3"
)

const (
	CodeUserNotFound    = "USER_NOT_FOUND"
	CodeDuplicateID     = "DUPLICATE_USER_ID"
	CodeResponseDelayed = "RESPONSE_DELAYED"
)

// Store is an immutable, ordered set of user records.
type Store struct {
	users []dto.UserDTO
	byID  map[int]int // id -> index in users
}

type fixtureFile struct {
	Users []dto.UserDTO `yaml:"users"`
}

// LoadFile reads and validates the fixture file at path.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(errx.D{"path": path}))
	}

	var f fixtureFile
	err = yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, errx.New(
			fmt.Sprintf("malformed fixture file %s: %v", path, err),
			errx.WithType(errx.T_Validation),
		)
	}

	return NewStore(f.Users)
}

// NewStore validates users and indexes them by id.
func NewStore(users []dto.UserDTO) (*Store, error) {
	if users == nil {
		users = []dto.UserDTO{}
	}

	s := &Store{
		users: users,
		byID:  make(map[int]int, len(users)),
	}

	for i, u := range users {
		err := val.ValidateSchema(u)
		if err != nil {
			return nil, errx.Wrap(err, errx.WithDetails(errx.D{"index": i}))
		}

		if _, dup := s.byID[*u.ID]; dup {
			return nil, errx.New(
				fmt.Sprintf("duplicate user id %d", *u.ID),
				errx.WithCode(CodeDuplicateID),
				errx.WithType(errx.T_Validation),
				errx.WithDetails(errx.D{"index": i}),
			)
		}
		s.byID[*u.ID] = i
	}

	return s, nil
}

// List returns every user in fixture order.
func (s *Store) List() []dto.UserDTO {
	return s.users
}

// Get returns the user with the given id.
func (s *Store) Get(id int) (dto.UserDTO, error) {
	i, ok := s.byID[id]
	if !ok {
		return dto.UserDTO{}, errx.New(
			fmt.Sprintf("user %d not found", id),
			errx.WithCode(CodeUserNotFound),
			errx.WithType(errx.T_NotFound),
			errx.WithDetails(errx.D{"user_id": id}),
		)
	}
	return s.users[i], nil
}
