package repo

import "errors"

const (
	uniqueViolationCode = "23505"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUserExists   = errors.New("username or email already exists")
	ErrMemberExists = errors.New("user is already a member of this team")
)
