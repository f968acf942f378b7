package partyrepo

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/model/party"
	"lastmile/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user and returns its store-assigned id.
func (r *GormUserRepository) Add(ctx context.Context, record *party.User) (int64, error) {
	if err := record.Validate(); err != nil {
		return 0, err
	}

	dto := userFromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.ID, nil
}

// Get retrieves a user by id.
func (r *GormUserRepository) Get(ctx context.Context, id int64) (*party.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, err
	}

	return userToDomain(dto)
}

// GormMerchantRepository implements ports.MerchantRepository using GORM.
// Merchants are reference data seeded outside the application, so the
// repository is read-only.
type GormMerchantRepository struct {
	db *gorm.DB
}

// NewGormMerchantRepository creates a new GORM merchant repository.
func NewGormMerchantRepository(db *gorm.DB) *GormMerchantRepository {
	return &GormMerchantRepository{db: db}
}

// Get retrieves a merchant by id.
func (r *GormMerchantRepository) Get(ctx context.Context, id int64) (*party.Merchant, error) {
	var dto MerchantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("merchant", id)
		}
		return nil, err
	}

	return merchantToDomain(dto)
}

// GetAllOpen retrieves all merchants currently accepting orders.
func (r *GormMerchantRepository) GetAllOpen(ctx context.Context) ([]*party.Merchant, error) {
	var dtos []MerchantDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "status = ?", party.MerchantOpen.String()).Error
	if err != nil {
		return nil, err
	}

	merchants := make([]*party.Merchant, 0, len(dtos))
	for _, dto := range dtos {
		m, err := merchantToDomain(dto)
		if err != nil {
			return nil, err
		}
		merchants = append(merchants, m)
	}

	return merchants, nil
}

// GormFeedbackRepository implements ports.FeedbackRepository using GORM.
type GormFeedbackRepository struct {
	db *gorm.DB
}

// NewGormFeedbackRepository creates a new GORM feedback repository.
func NewGormFeedbackRepository(db *gorm.DB) *GormFeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

// Add saves a new packaging feedback note and returns its store-assigned id.
func (r *GormFeedbackRepository) Add(ctx context.Context, record *party.PackagingFeedback) (int64, error) {
	if err := record.Validate(); err != nil {
		return 0, err
	}

	dto := feedbackFromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.ID, nil
}
