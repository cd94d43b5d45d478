package dto

import (
	"hms/internal/domains/housekeeping/model"
	"hms/shared"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	RoomID      string `json:"room_id"     validate:"required,uuid4"`
	Description string `json:"description" validate:"required,max=255"`
}

func (c *CreateTaskRequest) ToModel(user string) model.Task {
	return model.Task{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		Description: c.Description,
		Done:        false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTaskRequest struct {
	Description string `db:"description" json:"description" validate:"omitempty,max=255"`
	Done        *bool  `db:"done"        json:"done"        validate:"omitempty"`
}

type TaskResponse struct {
	ID          string `json:"id"`
	RoomID      string `json:"room_id"`
	RoomNumber  string `json:"room_number"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
	gDto.Metadata
}

func (t *TaskResponse) FromModel(model model.Task) {
	t.ID = model.ID
	t.RoomID = model.RoomID
	t.RoomNumber = model.RoomNumber
	t.Description = model.Description
	t.Done = model.Done
	t.Metadata.FromModel(model.Metadata)
}

type GetTasksResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (t *GetTasksResponse) FromModels(models []model.Task, totalData, limit int) {
	t.TotalData = totalData
	t.TotalPage = shared.CalculateTotalPage(totalData, limit)

	t.Tasks = make([]TaskResponse, len(models))
	for i, mod := range models {
		t.Tasks[i].FromModel(mod)
	}
}
