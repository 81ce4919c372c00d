// Package orderrepo persists the order aggregate with GORM, mapping between
// the domain model and its relational representation.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderDTO is the database row for an order aggregate. CreatedAt is stamped by
// the database on insert and drives the dispatch queue ordering.
type OrderDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CourierID *uuid.UUID  `gorm:"type:uuid;index"`
	Location  LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Status    int         `gorm:"type:int;not null;index"`
	CreatedAt time.Time   `gorm:"autoCreateTime;index"`
}

// TableName maps the DTO onto the "orders" table.
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO holds the delivery target coordinates, embedded as
// location_x / location_y columns.
type LocationDTO struct {
	X kernel.Coordinate `gorm:"type:smallint"`
	Y kernel.Coordinate `gorm:"type:smallint"`
}

// fromDomain converts an order aggregate to its database row.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		CourierID: courierID,
		Location: LocationDTO{
			X: aggregate.Location().X(),
			Y: aggregate.Location().Y(),
		},
		Status: int(aggregate.Status()),
	}
}

// toDomain restores an order aggregate from its database row.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	location, err := kernel.NewLocation(dto.Location.X, dto.Location.Y)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, courierID, location, order.Status(dto.Status))
}
