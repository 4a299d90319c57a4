package domain

import (
	"errors"
	"strings"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

type Credentials struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

func (c *Credentials) Validate() error {
	c.Username = strings.TrimSpace(c.Username)
	if err := validateStruct(c); err != nil {
		return err
	}
	// bcrypt rejects inputs over 72 bytes.
	if len(c.Password) > 72 {
		return NewValidationError("password", "must be at most 72 bytes")
	}
	return nil
}
