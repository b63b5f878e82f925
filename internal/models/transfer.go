package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is an immutable record of money moved between two accounts
// Created exactly once per committed transfer and never mutated afterwards
type Transfer struct {
	ID                int64
	Title             string
	Amount            decimal.Decimal
	SenderAccountID   int64
	ReceiverAccountID int64
	UpdatedAt         time.Time
	CreatedAt         time.Time
}
