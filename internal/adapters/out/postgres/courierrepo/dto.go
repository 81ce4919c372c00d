// Package courierrepo persists the courier aggregate with GORM, mapping
// between the domain model and its relational representation.
package courierrepo

import (
	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierDTO is the database row for a courier aggregate. The in-flight
// assignment is stored inline: assigned_order_id and the delivery coordinates
// are set together while the courier is Busy and all NULL while it is Free.
type CourierDTO struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name            string      `gorm:"type:varchar(255);not null"`
	TransportID     int         `gorm:"type:int;not null"`
	Location        LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Status          int         `gorm:"type:int;not null;index"`
	AssignedOrderID *uuid.UUID  `gorm:"type:uuid;index"`
	AssignedOrderX  *int8       `gorm:"type:smallint"`
	AssignedOrderY  *int8       `gorm:"type:smallint"`
}

// TableName maps the DTO onto the "couriers" table.
func (CourierDTO) TableName() string {
	return "couriers"
}

// LocationDTO holds the courier's current grid position, embedded as
// location_x / location_y columns.
type LocationDTO struct {
	X kernel.Coordinate `gorm:"type:smallint"`
	Y kernel.Coordinate `gorm:"type:smallint"`
}

// fromDomain converts a courier aggregate to its database row.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		TransportID: aggregate.Transport().ID(),
		Location: LocationDTO{
			X: aggregate.Location().X(),
			Y: aggregate.Location().Y(),
		},
		Status: int(aggregate.Status()),
	}

	if orderID := aggregate.AssignedOrderID(); orderID != nil {
		raw := orderID.Bytes()
		dto.AssignedOrderID = &raw
	}
	if target := aggregate.AssignedOrderLocation(); target != nil {
		x := int8(target.X())
		y := int8(target.Y())
		dto.AssignedOrderX = &x
		dto.AssignedOrderY = &y
	}

	return dto
}

// toDomain restores a courier aggregate from its database row.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	transport, err := courier.TransportFromID(dto.TransportID)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocation(dto.Location.X, dto.Location.Y)
	if err != nil {
		return nil, err
	}

	var assignedOrderID *kernel.UUID
	if dto.AssignedOrderID != nil {
		orderID, orderErr := kernel.UUIDFromBytes((*dto.AssignedOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		assignedOrderID = &orderID
	}

	var assignedOrderLocation *kernel.Location
	if dto.AssignedOrderX != nil && dto.AssignedOrderY != nil {
		target, locErr := kernel.NewLocation(
			kernel.Coordinate(*dto.AssignedOrderX),
			kernel.Coordinate(*dto.AssignedOrderY),
		)
		if locErr != nil {
			return nil, locErr
		}
		assignedOrderLocation = &target
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		transport,
		location,
		courier.Status(dto.Status),
		assignedOrderID,
		assignedOrderLocation,
	)
}
