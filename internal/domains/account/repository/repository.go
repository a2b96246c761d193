package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"lumen/infras/otel"
	"lumen/infras/postgres"
	"lumen/internal/domains/account/model"
	gDto "lumen/shared/dto"
	gRepo "lumen/shared/repository"
)

type User interface {
	InsertReturningID(ctx context.Context, model model.User) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type Role interface {
	InsertReturningID(ctx context.Context, model model.Role) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Role, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type UserRole interface {
	Insert(ctx context.Context, model model.UserRole) error
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type userRepository struct {
	gRepo.Repository[model.User]
}

type roleRepository struct {
	gRepo.Repository[model.Role]
}

type userRoleRepository struct {
	gRepo.Repository[model.UserRole]
}

func NewUser(db *postgres.Connection, otel otel.Otel) User {
	return &userRepository{
		Repository: gRepo.NewRepository[model.User](model.UserEntityName, model.UserTableName, model.FieldID, db, otel),
	}
}

func NewRole(db *postgres.Connection, otel otel.Otel) Role {
	return &roleRepository{
		Repository: gRepo.NewRepository[model.Role](model.RoleEntityName, model.RoleTableName, model.FieldID, db, otel),
	}
}

func NewUserRole(db *postgres.Connection, otel otel.Otel) UserRole {
	return &userRoleRepository{
		Repository: gRepo.NewRepository[model.UserRole](model.UserRoleEntityName, model.UserRoleTableName, model.FieldUserID, db, otel),
	}
}
