package dto

import (
	"time"

	"hms/internal/domains/staff/model"
	"hms/shared"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Email    string `json:"email"     validate:"required,email,max=255"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Role     string `json:"role"      validate:"required,oneof=admin manager receptionist housekeeping"`
}

func (c *CreateStaffRequest) ToModel(user, hashedPassword string) model.Staff {
	return model.Staff{
		ID:       uuid.NewString(),
		Email:    c.Email,
		Password: hashedPassword,
		FullName: c.FullName,
		Role:     c.Role,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStaffRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Role     string `db:"role"      json:"role"      validate:"omitempty,oneof=admin manager receptionist housekeeping"`
	Active   *bool  `db:"active"    json:"active"    validate:"omitempty"`
}

type StaffResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	Active    bool       `json:"active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	gDto.Metadata
}

func (s *StaffResponse) FromModel(model model.Staff) {
	s.ID = model.ID
	s.Email = model.Email
	s.FullName = model.FullName
	s.Role = model.Role
	s.Active = model.Active
	s.LastLogin = model.LastLogin
	s.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (s *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	s.TotalData = totalData
	s.TotalPage = shared.CalculateTotalPage(totalData, limit)

	s.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		s.Staff[i].FromModel(mod)
	}
}
