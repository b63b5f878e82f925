package models

import (
	"time"
)

type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	UpdatedAt time.Time
	CreatedAt time.Time
}
