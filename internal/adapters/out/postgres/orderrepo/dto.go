// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order domain
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"encoding/json"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items are stored as a JSON array; the source location columns are null until
// the pickup address has been geocoded.
type OrderDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Status      string `gorm:"index;not null"`
	UserID      int64  `gorm:"index;not null"`
	MerchantID  int64  `gorm:"index;not null"`
	DriverID    *int64 `gorm:"index"`
	Source      string
	SourceLat   *float64 `gorm:"type:double precision"`
	SourceLng   *float64 `gorm:"type:double precision"`
	Destination string   `gorm:"not null"`
	Items       []byte   `gorm:"type:jsonb;not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items, err := json.Marshal(aggregate.Items())
	if err != nil {
		return OrderDTO{}, err
	}

	dto := OrderDTO{
		ID:          aggregate.ID(),
		Status:      aggregate.Status().String(),
		UserID:      aggregate.UserID(),
		MerchantID:  aggregate.MerchantID(),
		DriverID:    aggregate.DriverID(),
		Source:      aggregate.Source(),
		Destination: aggregate.Destination(),
		Items:       items,
	}

	if location := aggregate.SourceLocation(); location != nil {
		lat := location.Lat()
		lng := location.Lng()
		dto.SourceLat = &lat
		dto.SourceLng = &lng
	}

	return dto, nil
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var items []string
	if len(dto.Items) > 0 {
		if err = json.Unmarshal(dto.Items, &items); err != nil {
			return nil, err
		}
	}

	var sourceLocation *kernel.GeoPoint
	if dto.SourceLat != nil && dto.SourceLng != nil {
		point, locErr := kernel.NewGeoPoint(*dto.SourceLat, *dto.SourceLng)
		if locErr != nil {
			return nil, locErr
		}
		sourceLocation = &point
	}

	return order.RestoreOrder(
		dto.ID,
		status,
		dto.UserID,
		dto.MerchantID,
		dto.Source,
		sourceLocation,
		dto.Destination,
		items,
		dto.DriverID,
	)
}
