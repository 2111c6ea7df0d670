package model

import (
	"casatente/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID                 = "id"
	FieldName               = "name"
	FieldRoomType           = "room_type"
	FieldDescription        = "description"
	FieldPricePerNight      = "price_per_night"
	FieldMaxGuests          = "max_guests"
	FieldAmenities          = "amenities"
	FieldImageURL           = "image_url"
	FieldAvailabilityStatus = "availability_status"
)

const (
	AvailabilityStatusAvailable   = "available"
	AvailabilityStatusUnavailable = "unavailable"
)

type Room struct {
	ID                 string          `db:"id"`
	Name               string          `db:"name"`
	RoomType           string          `db:"room_type"`
	Description        string          `db:"description"`
	PricePerNight      decimal.Decimal `db:"price_per_night"`
	MaxGuests          int             `db:"max_guests"`
	Amenities          string          `db:"amenities"`
	ImageURL           string          `db:"image_url"`
	AvailabilityStatus string          `db:"availability_status"`
	model.Metadata
}
