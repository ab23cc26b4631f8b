// Package user holds the read-only user entity referenced by tickets.
// Account management lives outside this service; tickets only need the
// owner's identity for search and display.
package user

import (
	"fmt"
)

type User struct {
	id    uint
	name  string
	email string
}

func ReconstructUser(id uint, name, email string) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}

	return &User{
		id:    id,
		name:  name,
		email: email,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}
