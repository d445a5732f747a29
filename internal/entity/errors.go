package entity

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyExists   = errors.New("already exists")
	ErrAlreadyPaid     = errors.New("already paid or not found")
	ErrNotPaid         = errors.New("not paid or not found")
)
