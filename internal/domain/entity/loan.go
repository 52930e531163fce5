// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanStatus is the workflow state of a SACCO loan.
type LoanStatus string

const (
	// LoanPending is a newly applied loan awaiting approval.
	LoanPending LoanStatus = "pending"
	// LoanApproved means the loan was authorized but funds have not moved.
	LoanApproved LoanStatus = "approved"
	// LoanDisbursed means funds were released to the member.
	LoanDisbursed LoanStatus = "disbursed"
	// LoanActive means repayment is underway.
	LoanActive LoanStatus = "active"
	// LoanOverdue means a scheduled installment was missed.
	LoanOverdue LoanStatus = "overdue"
	// LoanCompleted means the balance reached zero.
	LoanCompleted LoanStatus = "completed"
	// LoanDefaulted means the cooperative wrote the loan off.
	LoanDefaulted LoanStatus = "defaulted"
	// LoanRejected means the application was declined.
	LoanRejected LoanStatus = "rejected"
)

// String returns the string representation of the LoanStatus.
func (s LoanStatus) String() string {
	return string(s)
}

// IsValid checks if the LoanStatus is a valid value.
func (s LoanStatus) IsValid() bool {
	switch s {
	case LoanPending, LoanApproved, LoanDisbursed, LoanActive,
		LoanOverdue, LoanCompleted, LoanDefaulted, LoanRejected:
		return true
	default:
		return false
	}
}

// loanTransitions lists the legal workflow edges. Approval, disbursement
// and repayment actions drive these from the outside.
var loanTransitions = map[LoanStatus][]LoanStatus{
	LoanPending:   {LoanApproved, LoanRejected},
	LoanApproved:  {LoanDisbursed, LoanRejected},
	LoanDisbursed: {LoanActive},
	LoanActive:    {LoanOverdue, LoanCompleted, LoanDefaulted},
	LoanOverdue:   {LoanActive, LoanCompleted, LoanDefaulted},
}

// CanTransitionTo reports whether the workflow edge from s to next is legal.
func (s LoanStatus) CanTransitionTo(next LoanStatus) bool {
	for _, allowed := range loanTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Loan is a SACCO member loan with simple, non-compounding interest.
//
// The four computed fields (TotalInterest, TotalPayable, BalanceRemaining,
// MonthlyInstallment) are derived from principal, rate and tenure and
// must always be recalculated together via Recalculate before persisting
// a create or update that touches any of the three inputs. They are
// never edited independently.
type Loan struct {
	ID                 uuid.UUID       // The Global Unique Identifier (GUID) for the loan.
	MemberID           uuid.UUID       // The SACCO member who applied.
	Principal          decimal.Decimal // Amount borrowed, UGX.
	InterestRate       decimal.Decimal // Annual interest rate, percent.
	TenureMonths       int             // Repayment period in months.
	TotalInterest      decimal.Decimal // principal * rate * tenure / (100 * 12).
	TotalPayable       decimal.Decimal // principal + total interest.
	AmountPaid         decimal.Decimal // Sum of recorded repayments.
	BalanceRemaining   decimal.Decimal // total payable - amount paid.
	MonthlyInstallment decimal.Decimal // total payable / tenure months.
	Status             LoanStatus      // Workflow state.
	Purpose            string          // Free-text loan purpose.
	CreatedAt          time.Time       // Timestamp of the application.
	UpdatedAt          time.Time       // Timestamp of the last modification.
}

var (
	hundred      = decimal.NewFromInt(100)
	twelveMonths = decimal.NewFromInt(12)
)

// Recalculate refreshes all four computed fields from principal, rate
// and tenure. When any input is absent or zero it does nothing and the
// computed fields stay unset: a guard against dividing by zero in the
// installment formula, not a validated business rule. Whether draft
// loans with incomplete inputs are intentional upstream is unresolved;
// the skip is preserved as observed.
func (l *Loan) Recalculate() {
	if l.Principal.IsZero() || l.InterestRate.IsZero() || l.TenureMonths == 0 {
		return
	}

	tenure := decimal.NewFromInt(int64(l.TenureMonths))

	l.TotalInterest = l.Principal.
		Mul(l.InterestRate).
		Mul(tenure).
		Div(hundred.Mul(twelveMonths))
	l.TotalPayable = l.Principal.Add(l.TotalInterest)
	l.BalanceRemaining = l.TotalPayable.Sub(l.AmountPaid)
	l.MonthlyInstallment = l.TotalPayable.Div(tenure)
}

// Settled reports whether the outstanding balance reached zero.
func (l *Loan) Settled() bool {
	return !l.TotalPayable.IsZero() && l.BalanceRemaining.LessThanOrEqual(decimal.Zero)
}
