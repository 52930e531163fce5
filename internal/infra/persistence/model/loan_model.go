package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanModel mirrors the 'loans' table. All money columns are numeric UGX.
type LoanModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MemberID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Principal          decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	InterestRate       decimal.Decimal `gorm:"type:numeric(8,4);not null"`
	TenureMonths       int             `gorm:"not null"`
	TotalInterest      decimal.Decimal `gorm:"type:numeric(18,2)"`
	TotalPayable       decimal.Decimal `gorm:"type:numeric(18,2)"`
	AmountPaid         decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	BalanceRemaining   decimal.Decimal `gorm:"type:numeric(18,2)"`
	MonthlyInstallment decimal.Decimal `gorm:"type:numeric(18,2)"`
	Status             string          `gorm:"type:varchar(20);not null;index"`
	Purpose            string          `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoanModel) TableName() string {
	return "loans"
}
