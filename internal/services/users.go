package services

import (
	"context"
	"fmt"
	"slices"
)

// Role is one of the fixed user categories that decide which dashboard is shown
type Role string

// Known roles
const (
	RoleAdmin     Role = "admin"
	RoleLawyer    Role = "lawyer"
	RoleParalegal Role = "paralegal"
	RoleClient    Role = "client"
)

// Roles lists every role in display order
var Roles = []Role{RoleAdmin, RoleLawyer, RoleParalegal, RoleClient}

// ParseRole converts a string into a Role
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !slices.Contains(Roles, r) {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
	}
	return r, nil
}

// User is a portal account
type User struct {
	ID    int    `json:"id"    example:"4"                    doc:"User identifier"`
	Email string `json:"email" example:"cliente1@example.com" doc:"Email address"`
	Name  string `json:"name"  example:"Cliente Uno"          doc:"Display name"`
	Role  Role   `json:"role"  example:"client"               doc:"User role" enum:"admin,lawyer,paralegal,client"`
}

// DefaultUsers returns the built-in mock accounts, one per role
func DefaultUsers() []User {
	return []User{
		{ID: 1, Email: "admin@example.com", Name: "Administrador", Role: RoleAdmin},
		{ID: 2, Email: "abogado1@example.com", Name: "Abogado Uno", Role: RoleLawyer},
		{ID: 3, Email: "paralegal1@example.com", Name: "Paralegal Uno", Role: RoleParalegal},
		{ID: 4, Email: "cliente1@example.com", Name: "Cliente Uno", Role: RoleClient},
	}
}

// currentUserIndex is the directory entry reported as the signed-in user
const currentUserIndex = 3

// UserDirectory is a read-only set of mock users
type UserDirectory struct {
	users []User
}

// NewUserDirectory validates users and takes a private copy of them
func NewUserDirectory(users []User) (*UserDirectory, error) {
	if len(users) <= currentUserIndex {
		return nil, fmt.Errorf(
			"%w: user directory needs at least %d users, got %d",
			ErrInvalidInput, currentUserIndex+1, len(users),
		)
	}
	seen := make(map[int]struct{}, len(users))
	for _, u := range users {
		if _, err := ParseRole(string(u.Role)); err != nil {
			return nil, fmt.Errorf("user %d: %w", u.ID, err)
		}
		if _, dup := seen[u.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate user id %d", ErrInvalidInput, u.ID)
		}
		seen[u.ID] = struct{}{}
	}
	return &UserDirectory{users: slices.Clone(users)}, nil
}

// Current returns the user the request acts as.
//
// There is no session lookup: every caller gets the same entry. A cookie or
// token based lookup would plug in here.
func (d *UserDirectory) Current(_ context.Context) User {
	return d.users[currentUserIndex]
}

// List returns every user in directory order
func (d *UserDirectory) List() []User {
	return slices.Clone(d.users)
}
