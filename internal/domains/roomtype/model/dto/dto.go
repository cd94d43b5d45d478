package dto

import (
	"hms/internal/domains/roomtype/model"
	"hms/shared"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Description string  `json:"description" validate:"omitempty,max=255"`
	BaseRate    float64 `json:"base_rate"   validate:"omitempty,min=0"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		BaseRate:    c.BaseRate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name        string   `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string   `db:"description" json:"description" validate:"omitempty,max=255"`
	BaseRate    *float64 `db:"base_rate"   json:"base_rate"   validate:"omitempty,min=0"`
}

type RoomTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BaseRate    float64 `json:"base_rate"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.BaseRate = model.BaseRate
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
