// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence. It implements the repository pattern for the driver
// domain aggregate, handling the conversion between domain entities and
// database rows.
package driverrepo

import (
	"lastmile/internal/core/domain/model/driver"
	"lastmile/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// State is stored as its lowercase wire string; the location columns are null
// until the driver reports a position.
type DriverDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Phone string
	State string   `gorm:"index;not null"`
	Lat   *float64 `gorm:"type:double precision"`
	Lng   *float64 `gorm:"type:double precision"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	dto := DriverDTO{
		ID:    aggregate.ID(),
		Name:  aggregate.Name(),
		Phone: aggregate.Phone(),
		State: aggregate.State().String(),
	}

	if location := aggregate.Location(); location != nil {
		lat := location.Lat()
		lng := location.Lng()
		dto.Lat = &lat
		dto.Lng = &lng
	}

	return dto
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	state, err := driver.ParseState(dto.State)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	return driver.RestoreDriver(dto.ID, dto.Name, dto.Phone, state, location)
}
