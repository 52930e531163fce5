package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DividendModel mirrors the 'dividends' table, one row per fiscal year.
type DividendModel struct {
	ID                       uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Year                     int             `gorm:"not null;uniqueIndex"`
	TotalProfit              decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	DistributionPercentage   decimal.Decimal `gorm:"type:numeric(8,4);not null"`
	DistributableAmount      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TotalShares              decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	RatePerShare             decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	WithholdingTaxPercentage decimal.Decimal `gorm:"type:numeric(8,4);not null"`
	Status                   string          `gorm:"type:varchar(20);not null;index"`
	CancellationReason       string          `gorm:"type:text"`
	ApprovedBy               *uuid.UUID      `gorm:"type:uuid"`
	DistributedAt            *time.Time
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// TableName explicitly sets the table name for GORM.
func (DividendModel) TableName() string {
	return "dividends"
}

// DividendDistributionModel mirrors the 'dividend_distributions' table.
type DividendDistributionModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DividendID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_dividend_member"`
	MemberID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_dividend_member"`
	SharesHeld     decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	GrossAmount    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	WithholdingTax decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	NetAmount      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DividendDistributionModel) TableName() string {
	return "dividend_distributions"
}

// ShareAccountModel mirrors the 'share_accounts' table, one row per member.
type ShareAccountModel struct {
	MemberID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SharesHeld decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0"`
	Balance    decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	IsActive   bool            `gorm:"not null;default:true;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShareAccountModel) TableName() string {
	return "share_accounts"
}
