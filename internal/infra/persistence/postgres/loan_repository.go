// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tesotunes/internal/domain/entity"
	domainerrors "tesotunes/internal/domain/errors"
	"tesotunes/internal/domain/repository"
	"tesotunes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// loanRepository implements the domain.LoanRepository interface using GORM.
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository is the constructor for loanRepository.
func NewLoanRepository(db *gorm.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

// Create persists a new loan application.
func (repo *loanRepository) Create(ctx context.Context, loan *entity.Loan) error {
	loanM := fromLoanDomain(loan)

	if err := repo.db.WithContext(ctx).Create(loanM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create loan")
	}

	loan.ID = loanM.ID
	loan.CreatedAt = loanM.CreatedAt
	loan.UpdatedAt = loanM.UpdatedAt

	return nil
}

// FindByID retrieves a single loan.
func (repo *loanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error) {
	var loanM model.LoanModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&loanM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoanNotFound
		}

		return nil, errors.Wrap(err, "failed to find loan by id")
	}

	return toLoanDomain(&loanM), nil
}

// FindByMemberID retrieves all loans belonging to a member, newest first.
func (repo *loanRepository) FindByMemberID(ctx context.Context, memberID uuid.UUID) ([]*entity.Loan, error) {
	var loanModels []model.LoanModel
	err := repo.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&loanModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find loans by member id")
	}

	loans := make([]*entity.Loan, 0, len(loanModels))
	for i := range loanModels {
		loans = append(loans, toLoanDomain(&loanModels[i]))
	}

	return loans, nil
}

// Update persists changes to a loan, computed fields included.
func (repo *loanRepository) Update(ctx context.Context, loan *entity.Loan) error {
	loanM := fromLoanDomain(loan)

	if err := repo.db.WithContext(ctx).Save(loanM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update loan")
	}

	loan.UpdatedAt = loanM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toLoanDomain converts a GORM LoanModel to a domain Loan entity.
func toLoanDomain(data *model.LoanModel) *entity.Loan {
	if data == nil {
		return nil
	}

	return &entity.Loan{
		ID:                 data.ID,
		MemberID:           data.MemberID,
		Principal:          data.Principal,
		InterestRate:       data.InterestRate,
		TenureMonths:       data.TenureMonths,
		TotalInterest:      data.TotalInterest,
		TotalPayable:       data.TotalPayable,
		AmountPaid:         data.AmountPaid,
		BalanceRemaining:   data.BalanceRemaining,
		MonthlyInstallment: data.MonthlyInstallment,
		Status:             entity.LoanStatus(data.Status),
		Purpose:            data.Purpose,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromLoanDomain converts a domain Loan entity to a GORM LoanModel.
func fromLoanDomain(data *entity.Loan) *model.LoanModel {
	if data == nil {
		return nil
	}

	return &model.LoanModel{
		ID:                 data.ID,
		MemberID:           data.MemberID,
		Principal:          data.Principal,
		InterestRate:       data.InterestRate,
		TenureMonths:       data.TenureMonths,
		TotalInterest:      data.TotalInterest,
		TotalPayable:       data.TotalPayable,
		AmountPaid:         data.AmountPaid,
		BalanceRemaining:   data.BalanceRemaining,
		MonthlyInstallment: data.MonthlyInstallment,
		Status:             data.Status.String(),
		Purpose:            data.Purpose,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
