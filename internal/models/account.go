package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account balance assigned at creation, client provided values are ignored
var DefaultAccountBalance = decimal.New(250058, -2)

type Account struct {
	ID         int64
	CustomerID int64
	Title      string
	Balance    decimal.Decimal

	// Version is bumped by every mutation and serves as the optimistic
	// concurrency token for conditional balance updates
	Version int64

	UpdatedAt time.Time
	CreatedAt time.Time
}
