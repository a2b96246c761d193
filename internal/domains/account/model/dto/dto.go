package dto

import (
	"lumen/internal/domains/account/model"
	"lumen/shared/constant"
	gModel "lumen/shared/model"
	"strings"
	"time"
)

type CreateUserRequest struct {
	Username       string  `json:"username"        validate:"required,min=3,max=50"`
	Email          string  `json:"email"           validate:"required,email,dotdomain,max=256"`
	FullName       *string `json:"full_name"       validate:"omitnil,max=100"`
	Password       string  `json:"password"        validate:"required,min=8,max=72"`
	EmailConfirmed bool    `json:"email_confirmed"`
}

func (c *CreateUserRequest) SetDefaults() {
	c.Username = strings.TrimSpace(c.Username)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))

	if c.FullName != nil {
		fullName := strings.TrimSpace(*c.FullName)
		if fullName == "" {
			c.FullName = nil
		} else {
			c.FullName = &fullName
		}
	}
}

// ToModel builds the user row; passwordHash must already be a bcrypt hash.
func (c *CreateUserRequest) ToModel(passwordHash string, now time.Time) model.User {
	now = now.UTC()

	return model.User{
		Username:       c.Username,
		Email:          c.Email,
		FullName:       c.FullName,
		PasswordHash:   passwordHash,
		EmailConfirmed: c.EmailConfirmed,
		Metadata: gModel.Metadata{
			CreatedDate:  now,
			ModifiedDate: now,
		},
	}
}

type UserResponse struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	FullName       *string `json:"full_name,omitempty"`
	EmailConfirmed bool    `json:"email_confirmed"`
	CreatedDate    string  `json:"created_date"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.FullName = model.FullName
	r.EmailConfirmed = model.EmailConfirmed
	r.CreatedDate = model.CreatedDate.UTC().Format(constant.DateFormat)
}

type RoleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (r *RoleResponse) FromModel(model model.Role) {
	r.ID = model.ID
	r.Name = model.Name
}
