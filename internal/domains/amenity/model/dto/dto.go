package dto

import (
	"casatente/internal/domains/amenity/model"
	gDto "casatente/shared/dto"
	gModel "casatente/shared/model"
	"casatente/shared/timezone"

	"github.com/google/uuid"
)

type CreateAmenityRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Type        string `json:"type"        validate:"required,oneof=indoor outdoor"`
	ImageURL    string `json:"image_url"   validate:"omitempty,max=500"`
}

func (c *CreateAmenityRequest) ToModel(user string) model.Amenity {
	return model.Amenity{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Type:        c.Type,
		ImageURL:    c.ImageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAmenityRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=2000"`
	ImageURL    string `db:"image_url"   json:"image_url"   validate:"omitempty,max=500"`
}

type AmenityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	ImageURL    string `json:"image_url"`
	gDto.Metadata
}

func (r *AmenityResponse) FromModel(model model.Amenity) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Type = model.Type
	r.ImageURL = model.ImageURL
	r.Metadata.FromModel(model.Metadata)
}

type GetAmenitiesResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
	TotalData int               `json:"total_data"`
}

func (r *GetAmenitiesResponse) FromModels(models []model.Amenity, totalData int) {
	r.TotalData = totalData

	r.Amenities = make([]AmenityResponse, len(models))
	for i, mod := range models {
		r.Amenities[i].FromModel(mod)
	}
}
