package model

import "hms/shared/model"

const (
	TableName  = "housekeeping_tasks"
	EntityName = "housekeeping_task"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldDescription = "description"
	FieldDone        = "done"
)

type Task struct {
	ID          string `db:"id"`
	RoomID      string `db:"room_id"`
	Description string `db:"description"`
	Done        bool   `db:"done"`
	RoomNumber  string `db:"room_number" table:"rooms" column:"room_number"`
	model.Metadata
}

func (Task) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = housekeeping_tasks.room_id"
}
