package driverrepo

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/model/driver"
	"lastmile/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver and returns its store-assigned id.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.ID, nil
}

// Update saves an existing driver.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "phone", "state", "lat", "lng").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", dto.ID)
	}

	return nil
}

// Get retrieves a driver by id.
func (r *GormDriverRepository) Get(ctx context.Context, id int64) (*driver.Driver, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllDispatchable retrieves all idle drivers with a known location,
// ordered by id so distance ties break the same way on every run.
func (r *GormDriverRepository) GetAllDispatchable(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "state = ? AND lat IS NOT NULL AND lng IS NOT NULL", driver.Idle.String()).Error
	if err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// ClaimIdle atomically moves a driver from idle to enroute. The conditional
// update is the arbiter between concurrent dispatches: exactly one caller
// observes an affected row.
func (r *GormDriverRepository) ClaimIdle(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ? AND state = ?", id, driver.Idle.String()).
		Update("state", driver.Enroute.String())
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
