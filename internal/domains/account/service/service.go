package service

import (
	"context"
	"fmt"
	"lumen/infras/otel"
	"lumen/internal/domains/account/model"
	"lumen/internal/domains/account/model/dto"
	"lumen/internal/domains/account/repository"
	"lumen/shared/constant"
	gDto "lumen/shared/dto"
	"lumen/shared/failure"
	"lumen/shared/password"
	"lumen/shared/validator"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Account manages application users and their roles. It backs the seed routine
// and has no HTTP surface.
type Account interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	FindByEmail(ctx context.Context, email string) (dto.UserResponse, error)
	RoleExists(ctx context.Context, name string) (bool, error)
	CreateRole(ctx context.Context, name string) (dto.RoleResponse, error)
	FindRole(ctx context.Context, name string) (dto.RoleResponse, error)
	AssignRole(ctx context.Context, userID, roleID int64) error
}

type serviceImpl struct {
	users     repository.User
	roles     repository.Role
	userRoles repository.UserRole
	otel      otel.Otel
	now       func() time.Time
}

func New(users repository.User, roles repository.Role, userRoles repository.UserRole, otel otel.Otel) Account {
	return &serviceImpl{
		users:     users,
		roles:     roles,
		userRoles: userRoles,
		otel:      otel,
		now:       time.Now,
	}
}

func (s *serviceImpl) CreateUser(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.CreateUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	taken, err := s.users.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorEq, Value: req.Email, Table: model.UserTableName},
			gDto.Filter{Field: model.FieldUsername, Operator: gDto.FilterOperatorEq, Value: req.Username, Table: model.UserTableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing user")

		return res, fmt.Errorf("failed to check existing user: %w", err)
	}

	if taken {
		return res, failure.Conflict("user with this email or username already exists") // nolint:wrapcheck
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	user := req.ToModel(hash, s.now())

	user.ID, err = s.users.InsertReturningID(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("user created")

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) FindByEmail(ctx context.Context, email string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.FindByEmail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.users.Get(ctx, gDto.NewFilterGroup(gDto.Filter{
		Field:    model.FieldEmail,
		Operator: gDto.FilterOperatorEq,
		Value:    strings.ToLower(strings.TrimSpace(email)),
		Table:    model.UserTableName,
	}))
	if err != nil {
		log.Error().Err(err).Msg("failed to find user by email")

		return res, fmt.Errorf("failed to find user by email: %w", err)
	}

	if user.ID == 0 {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) RoleExists(ctx context.Context, name string) (exist bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.RoleExists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err = s.roles.Exist(ctx, roleFilter(name))
	if err != nil {
		log.Error().Err(err).Msg("failed to check role")

		return false, fmt.Errorf("failed to check role: %w", err)
	}

	return exist, nil
}

func (s *serviceImpl) CreateRole(ctx context.Context, name string) (res dto.RoleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.CreateRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name = strings.TrimSpace(name)
	if err = validator.ValidateVar(name, "required,max=50"); err != nil {
		return res, err //nolint:wrapcheck
	}

	role := model.Role{Name: name}

	role.ID, err = s.roles.InsertReturningID(ctx, role)
	if err != nil {
		log.Error().Err(err).Msg("failed to create role")

		return res, fmt.Errorf("failed to create role: %w", err)
	}

	log.Info().Int64("roleID", role.ID).Str("role", role.Name).Msg("role created")

	res.FromModel(role)

	return res, nil
}

func (s *serviceImpl) FindRole(ctx context.Context, name string) (res dto.RoleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.FindRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	role, err := s.roles.Get(ctx, roleFilter(name))
	if err != nil {
		log.Error().Err(err).Msg("failed to find role")

		return res, fmt.Errorf("failed to find role: %w", err)
	}

	if role.ID == 0 {
		return res, failure.NotFound("role not found") // nolint:wrapcheck
	}

	res.FromModel(role)

	return res, nil
}

// AssignRole links a user to a role. An existing link is left untouched.
func (s *serviceImpl) AssignRole(ctx context.Context, userID, roleID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.AssignRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.userRoles.Exist(ctx, gDto.NewFilterGroup(
		gDto.Filter{Field: model.FieldUserID, Operator: gDto.FilterOperatorEq, Value: userID, Table: model.UserRoleTableName},
		gDto.Filter{Field: model.FieldRoleID, Operator: gDto.FilterOperatorEq, Value: roleID, Table: model.UserRoleTableName},
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to check user role")

		return fmt.Errorf("failed to check user role: %w", err)
	}

	if exist {
		return nil
	}

	if err = s.userRoles.Insert(ctx, model.UserRole{UserID: userID, RoleID: roleID}); err != nil {
		log.Error().Err(err).Msg("failed to assign role")

		return fmt.Errorf("failed to assign role: %w", err)
	}

	return nil
}

func roleFilter(name string) gDto.FilterGroup {
	return gDto.NewFilterGroup(gDto.Filter{
		Field:    model.FieldName,
		Operator: gDto.FilterOperatorEq,
		Value:    strings.TrimSpace(name),
		Table:    model.RoleTableName,
	})
}
