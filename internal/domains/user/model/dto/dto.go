package dto

import (
	"mime/multipart"

	"bistro/internal/domains/user/model"
	"bistro/shared"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	gModel "bistro/shared/model"
	"bistro/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string  `json:"email"           validate:"required,email"`
	Password string  `json:"password"        validate:"required,min=8"`
	FullName string  `json:"full_name"       validate:"required,max=255"`
	Role     string  `json:"role"            validate:"omitempty,oneof=admin user"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleUser
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Role:     role,
		FullName: r.FullName,
		Phone:    r.Phone,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FullName  string  `json:"full_name"`
	Phone     *string `json:"phone,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
	LastLogin *string `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.Avatar = model.Avatar
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	Role     *string `db:"role"      json:"role,omitempty"      validate:"omitempty,oneof=admin user"`
	FullName *string `db:"full_name" json:"full_name,omitempty" validate:"omitempty,max=255"`
	Phone    *string `db:"phone"     json:"phone,omitempty"     validate:"omitempty,max=20"`
	Active   *bool   `db:"active"    json:"active,omitempty"`
}

type UpdateProfileRequest struct {
	FullName   *string               `db:"full_name" json:"full_name,omitempty" validate:"omitempty,max=255"`
	Phone      *string               `db:"phone"     json:"phone,omitempty"     validate:"omitempty,max=20"`
	Avatar     *multipart.FileHeader `db:"-"         json:"-"                   validate:"omitempty,mimetypes=image/jpeg image/png image/jpg image/gif,maxfilesize=2"`
	AvatarFile multipart.File        `db:"-"         json:"-"`
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
