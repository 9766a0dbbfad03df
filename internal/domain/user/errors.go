package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameTaken          = errors.New("username already taken")
	ErrEmailTaken             = errors.New("email already registered")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
