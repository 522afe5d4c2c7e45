package identity

import "errors"

var (
	ErrIdentityNotFound = errors.New("identity not found")
	ErrInvalidToken     = errors.New("invalid identity token")
)
