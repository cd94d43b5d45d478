package model

import "hms/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldRoomTypeID = "room_type_id"
	FieldStatus     = "status"
	FieldFloor      = "floor"
	FieldImage      = "image"
)

// Housekeeping/availability statuses a room can be in.
const (
	StatusAvailable   = "Available"
	StatusOccupied    = "Occupied"
	StatusCleaning    = "Cleaning"
	StatusMaintenance = "Maintenance"
)

type Room struct {
	ID           string `db:"id"`
	RoomNumber   string `db:"room_number"`
	RoomTypeID   string `db:"room_type_id"`
	Status       string `db:"status"`
	Floor        string `db:"floor"`
	Image        string `db:"image"`
	RoomTypeName string `db:"room_type_name" table:"room_types" column:"name"`
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return "LEFT JOIN room_types ON room_types.id = rooms.room_type_id"
}
