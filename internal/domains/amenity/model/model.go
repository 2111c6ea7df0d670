package model

import "casatente/shared/model"

const (
	TableName  = "amenities"
	EntityName = "amenity"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldType        = "type"
	FieldImageURL    = "image_url"
)

const (
	TypeIndoor  = "indoor"
	TypeOutdoor = "outdoor"
)

type Amenity struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Type        string `db:"type"`
	ImageURL    string `db:"image_url"`
	model.Metadata
}
