package model

import "hms/shared/model"

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldBaseRate    = "base_rate"
)

type RoomType struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	BaseRate    float64 `db:"base_rate"`
	model.Metadata
}
