package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDividendComputeDerived(t *testing.T) {
	dividend := &Dividend{
		TotalProfit:            decimal.NewFromInt(10_000_000),
		DistributionPercentage: decimal.NewFromInt(70),
		TotalShares:            decimal.NewFromInt(1_000),
	}
	dividend.ComputeDerived()

	assert.True(t, dividend.DistributableAmount.Equal(decimal.NewFromInt(7_000_000)), "distributable = %s", dividend.DistributableAmount)
	assert.True(t, dividend.RatePerShare.Equal(decimal.NewFromInt(7_000)), "rate = %s", dividend.RatePerShare)
}

func TestDividendComputeDerived_NoShares(t *testing.T) {
	dividend := &Dividend{
		TotalProfit:            decimal.NewFromInt(10_000_000),
		DistributionPercentage: decimal.NewFromInt(70),
	}
	dividend.ComputeDerived()

	assert.True(t, dividend.DistributableAmount.Equal(decimal.NewFromInt(7_000_000)))
	assert.True(t, dividend.RatePerShare.IsZero(), "rate must stay unset without shares")
}

func TestDividendDistributionComputeAmounts(t *testing.T) {
	dist := &DividendDistribution{
		SharesHeld: decimal.NewFromInt(50),
	}
	dist.ComputeAmounts(decimal.NewFromInt(7_000), decimal.NewFromInt(15))

	assert.True(t, dist.GrossAmount.Equal(decimal.NewFromInt(350_000)), "gross = %s", dist.GrossAmount)
	assert.True(t, dist.WithholdingTax.Equal(decimal.NewFromInt(52_500)), "tax = %s", dist.WithholdingTax)
	assert.True(t, dist.NetAmount.Equal(decimal.NewFromInt(297_500)), "net = %s", dist.NetAmount)
}

func TestDividendDistributionComputeAmounts_ZeroTax(t *testing.T) {
	dist := &DividendDistribution{
		SharesHeld: decimal.NewFromInt(50),
	}
	dist.ComputeAmounts(decimal.NewFromInt(7_000), decimal.Zero)

	assert.True(t, dist.WithholdingTax.IsZero())
	assert.True(t, dist.NetAmount.Equal(dist.GrossAmount))
}

func TestDividendStatusCanTransitionTo(t *testing.T) {
	assert.True(t, DividendCalculated.CanTransitionTo(DividendApproved))
	assert.True(t, DividendCalculated.CanTransitionTo(DividendCancelled))
	assert.True(t, DividendApproved.CanTransitionTo(DividendDistributed))
	assert.True(t, DividendApproved.CanTransitionTo(DividendCancelled))

	assert.False(t, DividendCalculated.CanTransitionTo(DividendDistributed), "distribution requires prior approval")
	assert.False(t, DividendDistributed.CanTransitionTo(DividendCancelled), "distributed dividends are immutable")
	assert.False(t, DividendDistributed.CanTransitionTo(DividendApproved))
	assert.False(t, DividendCancelled.CanTransitionTo(DividendApproved))
}
