package store

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrDuplicateSubject = errors.New("subject already exists")
)
