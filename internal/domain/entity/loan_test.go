package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoanRecalculate(t *testing.T) {
	loan := &Loan{
		Principal:    decimal.NewFromInt(1_200_000),
		InterestRate: decimal.NewFromInt(10),
		TenureMonths: 12,
	}
	loan.Recalculate()

	assert.True(t, loan.TotalInterest.Equal(decimal.NewFromInt(120_000)), "interest = %s", loan.TotalInterest)
	assert.True(t, loan.TotalPayable.Equal(decimal.NewFromInt(1_320_000)), "payable = %s", loan.TotalPayable)
	assert.True(t, loan.BalanceRemaining.Equal(decimal.NewFromInt(1_320_000)), "balance = %s", loan.BalanceRemaining)
	assert.True(t, loan.MonthlyInstallment.Equal(decimal.NewFromInt(110_000)), "installment = %s", loan.MonthlyInstallment)
}

func TestLoanRecalculate_AccountsForPayments(t *testing.T) {
	loan := &Loan{
		Principal:    decimal.NewFromInt(1_200_000),
		InterestRate: decimal.NewFromInt(10),
		TenureMonths: 12,
		AmountPaid:   decimal.NewFromInt(320_000),
	}
	loan.Recalculate()

	assert.True(t, loan.BalanceRemaining.Equal(decimal.NewFromInt(1_000_000)), "balance = %s", loan.BalanceRemaining)
}

func TestLoanRecalculate_SkipsIncompleteInputs(t *testing.T) {
	loan := &Loan{
		Principal:    decimal.NewFromInt(1_200_000),
		InterestRate: decimal.NewFromInt(10),
		// TenureMonths missing: dividing by it would panic.
	}
	loan.Recalculate()

	assert.True(t, loan.TotalInterest.IsZero())
	assert.True(t, loan.TotalPayable.IsZero())
	assert.True(t, loan.MonthlyInstallment.IsZero())
}

func TestLoanSettled(t *testing.T) {
	loan := &Loan{
		Principal:    decimal.NewFromInt(1_200_000),
		InterestRate: decimal.NewFromInt(10),
		TenureMonths: 12,
	}
	loan.Recalculate()
	assert.False(t, loan.Settled())

	loan.AmountPaid = loan.TotalPayable
	loan.Recalculate()
	assert.True(t, loan.Settled())

	// A loan with unset computed fields is not settled, it is blank.
	assert.False(t, (&Loan{}).Settled())
}

func TestLoanStatusCanTransitionTo(t *testing.T) {
	legal := []struct {
		from, to LoanStatus
	}{
		{LoanPending, LoanApproved},
		{LoanPending, LoanRejected},
		{LoanApproved, LoanDisbursed},
		{LoanApproved, LoanRejected},
		{LoanDisbursed, LoanActive},
		{LoanActive, LoanOverdue},
		{LoanActive, LoanCompleted},
		{LoanActive, LoanDefaulted},
		{LoanOverdue, LoanActive},
		{LoanOverdue, LoanCompleted},
		{LoanOverdue, LoanDefaulted},
	}
	for _, edge := range legal {
		assert.True(t, edge.from.CanTransitionTo(edge.to), "%s -> %s should be legal", edge.from, edge.to)
	}

	illegal := []struct {
		from, to LoanStatus
	}{
		{LoanPending, LoanActive},
		{LoanPending, LoanDisbursed},
		{LoanApproved, LoanActive},
		{LoanCompleted, LoanActive},
		{LoanDefaulted, LoanActive},
		{LoanRejected, LoanApproved},
		{LoanActive, LoanPending},
	}
	for _, edge := range illegal {
		assert.False(t, edge.from.CanTransitionTo(edge.to), "%s -> %s should be illegal", edge.from, edge.to)
	}
}

func TestLoanStatusIsValid(t *testing.T) {
	assert.True(t, LoanPending.IsValid())
	assert.True(t, LoanDefaulted.IsValid())
	assert.False(t, LoanStatus("frozen").IsValid())
	assert.False(t, LoanStatus("").IsValid())
}
