// Package partyrepo provides data transfer objects and mapping functions for
// user, merchant, and packaging feedback persistence.
package partyrepo

import (
	"encoding/json"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/party"
)

// UserDTO represents the database structure for persisting customers.
type UserDTO struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"not null"`
	Email   string
	Address string
	Phone   string
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// MerchantDTO represents the database structure for persisting merchants.
// Inventory is stored as a JSON array of item names; the location columns are
// null for merchants without a geocoded address.
type MerchantDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null"`
	Email       string
	Phone       string
	Address     string
	Lat         *float64 `gorm:"type:double precision"`
	Lng         *float64 `gorm:"type:double precision"`
	Inventory   []byte   `gorm:"type:jsonb"`
	PrepMinutes int      `gorm:"not null"`
	Status      string   `gorm:"index;not null"`
}

// TableName specifies the database table name for merchant entities.
func (MerchantDTO) TableName() string {
	return "merchants"
}

// FeedbackDTO represents the database structure for persisting packaging
// feedback notes.
type FeedbackDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	MerchantID int64  `gorm:"index;not null"`
	OrderID    *int64 `gorm:"index"`
	Feedback   string `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for feedback entities.
func (FeedbackDTO) TableName() string {
	return "packaging_feedback"
}

func userFromDomain(record *party.User) UserDTO {
	return UserDTO{
		ID:      record.ID(),
		Name:    record.Name(),
		Email:   record.Email(),
		Address: record.Address(),
		Phone:   record.Phone(),
	}
}

func userToDomain(dto UserDTO) (*party.User, error) {
	return party.RestoreUser(dto.ID, dto.Name, dto.Email, dto.Address, dto.Phone)
}

func merchantToDomain(dto MerchantDTO) (*party.Merchant, error) {
	status, err := party.ParseMerchantStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var inventory []string
	if len(dto.Inventory) > 0 {
		if err = json.Unmarshal(dto.Inventory, &inventory); err != nil {
			return nil, err
		}
	}

	var location *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	return party.RestoreMerchant(
		dto.ID,
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.Address,
		location,
		inventory,
		dto.PrepMinutes,
		status,
	)
}

func feedbackFromDomain(record *party.PackagingFeedback) FeedbackDTO {
	return FeedbackDTO{
		ID:         record.ID(),
		MerchantID: record.MerchantID(),
		OrderID:    record.OrderID(),
		Feedback:   record.Feedback(),
		CreatedAt:  record.CreatedAt(),
	}
}
