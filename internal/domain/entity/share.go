// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShareAccount is a SACCO member's shareholding and cash position.
// The balance is credited only when a dividend reaches the distributed
// state, never earlier.
type ShareAccount struct {
	MemberID   uuid.UUID       // Foreign Key linking the account to a core User entity.
	SharesHeld decimal.Decimal // Shares currently held by the member.
	Balance    decimal.Decimal // Cash balance, UGX.
	IsActive   bool            // Inactive members are skipped by dividend calculation.
	CreatedAt  time.Time       // Timestamp of when the account was opened.
	UpdatedAt  time.Time       // Timestamp of the last modification.
}
