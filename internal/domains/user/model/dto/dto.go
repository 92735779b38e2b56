package dto

import (
	"agendalab/internal/domains/user/model"
	"agendalab/shared"
	"agendalab/shared/constant"
	gDto "agendalab/shared/dto"
	gModel "agendalab/shared/model"
	"agendalab/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Name       string  `json:"name"       validate:"required,max=100"`
	Email      string  `json:"email"      validate:"required,email"`
	Password   string  `json:"password"   validate:"required,min=8"`
	Role       string  `json:"role"       validate:"omitempty,oneof=admin coordenacao professor"`
	Department *string `json:"department,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleProfessor
	}

	return model.User{
		ID:         uuid.NewString(),
		Name:       r.Name,
		Email:      r.Email,
		Password:   hashedPassword,
		Role:       role,
		Department: r.Department,
		Phone:      r.Phone,
		Status:     constant.UserStatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department *string `json:"department,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Status     string  `json:"status"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Role = model.Role
	r.Department = model.Department
	r.Phone = model.Phone
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	Name       *string `db:"name"       json:"name,omitempty"       validate:"omitempty,max=100"`
	Role       *string `db:"role"       json:"role,omitempty"       validate:"omitempty,oneof=admin coordenacao professor"`
	Department *string `db:"department" json:"department,omitempty"`
	Phone      *string `db:"phone"      json:"phone,omitempty"`
	Status     *string `db:"status"     json:"status,omitempty"     validate:"omitempty,oneof=ativo inativo"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
