package dto

import (
	"casatente/internal/domains/room/model"
	"casatente/shared"
	gDto "casatente/shared/dto"
	gModel "casatente/shared/model"
	"casatente/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	Name               string          `json:"name"                validate:"required,max=100"`
	RoomType           string          `json:"room_type"           validate:"required,max=100"`
	Description        string          `json:"description"         validate:"omitempty,max=2000"`
	PricePerNight      decimal.Decimal `json:"price_per_night"     validate:"required"`
	MaxGuests          int             `json:"max_guests"          validate:"required,min=1"`
	Amenities          string          `json:"amenities"           validate:"omitempty,max=2000"`
	ImageURL           string          `json:"image_url"           validate:"omitempty,max=500"`
	AvailabilityStatus string          `json:"availability_status" validate:"omitempty,oneof=available unavailable"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	availability := c.AvailabilityStatus
	if availability == "" {
		availability = model.AvailabilityStatusAvailable
	}

	return model.Room{
		ID:                 uuid.NewString(),
		Name:               c.Name,
		RoomType:           c.RoomType,
		Description:        c.Description,
		PricePerNight:      c.PricePerNight,
		MaxGuests:          c.MaxGuests,
		Amenities:          c.Amenities,
		ImageURL:           c.ImageURL,
		AvailabilityStatus: availability,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name               string           `db:"name"                json:"name"                validate:"omitempty,max=100"`
	RoomType           string           `db:"room_type"           json:"room_type"           validate:"omitempty,max=100"`
	Description        string           `db:"description"         json:"description"         validate:"omitempty,max=2000"`
	PricePerNight      *decimal.Decimal `db:"price_per_night"     json:"price_per_night"     validate:"omitempty"`
	MaxGuests          *int             `db:"max_guests"          json:"max_guests"          validate:"omitempty,min=1"`
	Amenities          string           `db:"amenities"           json:"amenities"           validate:"omitempty,max=2000"`
	ImageURL           string           `db:"image_url"           json:"image_url"           validate:"omitempty,max=500"`
	AvailabilityStatus string           `db:"availability_status" json:"availability_status" validate:"omitempty,oneof=available unavailable"`
}

type RoomResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	RoomType           string          `json:"room_type"`
	Description        string          `json:"description"`
	PricePerNight      decimal.Decimal `json:"price_per_night"`
	MaxGuests          int             `json:"max_guests"`
	Amenities          string          `json:"amenities"`
	ImageURL           string          `json:"image_url"`
	AvailabilityStatus string          `json:"availability_status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.RoomType = model.RoomType
	r.Description = model.Description
	r.PricePerNight = model.PricePerNight
	r.MaxGuests = model.MaxGuests
	r.Amenities = model.Amenities
	r.ImageURL = model.ImageURL
	r.AvailabilityStatus = model.AvailabilityStatus
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
