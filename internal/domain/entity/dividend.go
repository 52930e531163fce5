// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DividendStatus is the approval-gate state of a yearly dividend.
// Transitions run strictly forward: calculated -> approved -> distributed,
// or calculated/approved -> cancelled. Once distributed, immutable.
type DividendStatus string

const (
	// DividendCalculated means amounts are computed but not yet authorized.
	DividendCalculated DividendStatus = "calculated"
	// DividendApproved means a second party authorized the payout.
	DividendApproved DividendStatus = "approved"
	// DividendDistributed means funds actually moved to member accounts.
	DividendDistributed DividendStatus = "distributed"
	// DividendCancelled means the payout was abandoned before distribution.
	DividendCancelled DividendStatus = "cancelled"
)

// String returns the string representation of the DividendStatus.
func (s DividendStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether the gate allows moving from s to next.
func (s DividendStatus) CanTransitionTo(next DividendStatus) bool {
	switch s {
	case DividendCalculated:
		return next == DividendApproved || next == DividendCancelled
	case DividendApproved:
		return next == DividendDistributed || next == DividendCancelled
	default:
		return false
	}
}

// Dividend is a one-time, per-fiscal-year profit share for SACCO members.
type Dividend struct {
	ID                       uuid.UUID       // The Global Unique Identifier (GUID) for the dividend.
	Year                     int             // Fiscal year, unique.
	TotalProfit              decimal.Decimal // Profit declared for the year, UGX.
	DistributionPercentage   decimal.Decimal // Share of profit paid out, percent.
	DistributableAmount      decimal.Decimal // total profit * pct / 100.
	TotalShares              decimal.Decimal // Outstanding shares at calculation time.
	RatePerShare             decimal.Decimal // distributable amount / total shares.
	WithholdingTaxPercentage decimal.Decimal // Tax deducted at source, percent.
	Status                   DividendStatus  // Gate state.
	CancellationReason       string          // Mandatory audit reason when cancelled.
	ApprovedBy               *uuid.UUID      // Admin who authorized the payout.
	DistributedAt            *time.Time      // When funds moved; nil before distribution.
	CreatedAt                time.Time       // Timestamp of the calculation.
	UpdatedAt                time.Time       // Timestamp of the last modification.
}

// ComputeDerived fills DistributableAmount and RatePerShare from the
// declared inputs. TotalShares must be positive.
func (d *Dividend) ComputeDerived() {
	d.DistributableAmount = d.TotalProfit.Mul(d.DistributionPercentage).Div(hundred)
	if d.TotalShares.IsPositive() {
		d.RatePerShare = d.DistributableAmount.Div(d.TotalShares)
	}
}

// DistributionStatus is the payout state of one member's share.
type DistributionStatus string

const (
	// DistributionPending means the member payout is computed but unpaid.
	DistributionPending DistributionStatus = "pending"
	// DistributionPaid means the member account was credited.
	DistributionPaid DistributionStatus = "paid"
)

// DividendDistribution is one member's slice of a dividend.
type DividendDistribution struct {
	ID             uuid.UUID          // The Global Unique Identifier (GUID) for the distribution.
	DividendID     uuid.UUID          // The dividend this payout belongs to.
	MemberID       uuid.UUID          // The member being paid.
	SharesHeld     decimal.Decimal    // Shares the member held at calculation time.
	GrossAmount    decimal.Decimal    // shares held * rate per share.
	WithholdingTax decimal.Decimal    // gross * tax pct / 100.
	NetAmount      decimal.Decimal    // gross - withholding tax.
	Status         DistributionStatus // Payout state.
	CreatedAt      time.Time          // Timestamp of the calculation.
	UpdatedAt      time.Time          // Timestamp of the last modification.
}

// ComputeAmounts derives gross, withholding and net from shares held,
// the dividend's rate per share and its withholding tax percentage.
func (dd *DividendDistribution) ComputeAmounts(ratePerShare, taxPct decimal.Decimal) {
	dd.GrossAmount = dd.SharesHeld.Mul(ratePerShare)
	dd.WithholdingTax = dd.GrossAmount.Mul(taxPct).Div(hundred)
	dd.NetAmount = dd.GrossAmount.Sub(dd.WithholdingTax)
}
