package model

import "lumen/shared/model"

const (
	UserTableName     = "users"
	RoleTableName     = "roles"
	UserRoleTableName = "user_roles"

	UserEntityName     = "user"
	RoleEntityName     = "role"
	UserRoleEntityName = "user_role"

	FieldID             = "id"
	FieldUsername       = "username"
	FieldEmail          = "email"
	FieldFullName       = "full_name"
	FieldPasswordHash   = "password_hash"
	FieldEmailConfirmed = "email_confirmed"
	FieldName           = "name"
	FieldUserID         = "user_id"
	FieldRoleID         = "role_id"
)

const RoleAdmin = "Admin"

type User struct {
	ID             int64   `db:"id"              generated:"true"`
	Username       string  `db:"username"`
	Email          string  `db:"email"`
	FullName       *string `db:"full_name"`
	PasswordHash   string  `db:"password_hash"`
	EmailConfirmed bool    `db:"email_confirmed"`
	model.Metadata
}

type Role struct {
	ID   int64  `db:"id"   generated:"true"`
	Name string `db:"name"`
}

type UserRole struct {
	UserID int64 `db:"user_id"`
	RoleID int64 `db:"role_id"`
}
