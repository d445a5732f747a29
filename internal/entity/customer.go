package entity

import (
	"time"
)

type Customer struct {
	ID            int64
	Code          string
	Name          string
	Login         string
	TaxID         string
	Email         string
	Group         string
	Active        bool
	InstalledAt   time.Time
	DeactivatedAt *time.Time
}

type CustomerFilter struct {
	Group  string
	Active *bool
	Page   uint64
	Limit  uint64
}
