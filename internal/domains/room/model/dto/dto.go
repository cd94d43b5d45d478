package dto

import (
	"mime/multipart"

	"hms/internal/domains/room/model"
	"hms/shared"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber string                `json:"room_number"  validate:"required,max=20"`
	RoomTypeID string                `json:"room_type_id" validate:"required,uuid4"`
	Status     string                `json:"status"       validate:"omitempty,oneof=Available Occupied Cleaning Maintenance"`
	Floor      string                `json:"floor"        validate:"omitempty,max=10"`
	Image      *multipart.FileHeader `json:"image"        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.Room{
		ID:         uuid.NewString(),
		RoomNumber: c.RoomNumber,
		RoomTypeID: c.RoomTypeID,
		Status:     status,
		Floor:      c.Floor,
		Image:      imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber string                `db:"room_number"  json:"room_number"  validate:"omitempty,max=20"`
	RoomTypeID string                `db:"room_type_id" json:"room_type_id" validate:"omitempty,uuid4"`
	Status     string                `db:"status"       json:"status"       validate:"omitempty,oneof=Available Occupied Cleaning Maintenance"`
	Floor      string                `db:"floor"        json:"floor"        validate:"omitempty,max=10"`
	Image      *multipart.FileHeader `json:"image"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
}

type RoomResponse struct {
	ID           string `json:"id"`
	RoomNumber   string `json:"room_number"`
	RoomTypeID   string `json:"room_type_id"`
	RoomTypeName string `json:"room_type_name"`
	Status       string `json:"status"`
	Floor        string `json:"floor"`
	Image        string `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomTypeID = model.RoomTypeID
	r.RoomTypeName = model.RoomTypeName
	r.Status = model.Status
	r.Floor = model.Floor
	r.Image = model.Image
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
