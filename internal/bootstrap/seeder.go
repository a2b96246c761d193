// Package bootstrap performs the idempotent first-run initialization: schema,
// admin role, admin account and the demonstration map catalog.
package bootstrap

import (
	"context"
	"fmt"
	"lumen/config"
	"lumen/infras/otel"
	accountDto "lumen/internal/domains/account/model/dto"
	mapModel "lumen/internal/domains/maplocation/model"
	"lumen/shared/constant"
	gDto "lumen/shared/dto"
	"lumen/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

type SchemaMigrator interface {
	Up(ctx context.Context) error
}

// AccountStore is the identity capability the seed needs.
type AccountStore interface {
	CreateUser(ctx context.Context, req accountDto.CreateUserRequest) (accountDto.UserResponse, error)
	FindByEmail(ctx context.Context, email string) (accountDto.UserResponse, error)
	RoleExists(ctx context.Context, name string) (bool, error)
	CreateRole(ctx context.Context, name string) (accountDto.RoleResponse, error)
	FindRole(ctx context.Context, name string) (accountDto.RoleResponse, error)
	AssignRole(ctx context.Context, userID, roleID int64) error
}

type LocationStore interface {
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	InsertBulk(ctx context.Context, models []mapModel.MapLocation) error
}

type Admin struct {
	Email    string
	Username string
	FullName string
	Password string
	Role     string
}

// Result reports what a run changed. A run against a seeded store returns the zero value.
type Result struct {
	RoleCreated       bool
	UserCreated       bool
	LocationsInserted int
}

type Seeder struct {
	migrator  SchemaMigrator
	accounts  AccountStore
	locations LocationStore
	admin     Admin
	otel      otel.Otel
	now       func() time.Time
}

func New(migrator SchemaMigrator, accounts AccountStore, locations LocationStore, cfg *config.Config, otel otel.Otel) *Seeder {
	return &Seeder{
		migrator:  migrator,
		accounts:  accounts,
		locations: locations,
		admin: Admin{
			Email:    cfg.Seed.AdminEmail,
			Username: cfg.Seed.AdminUsername,
			FullName: cfg.Seed.AdminFullName,
			Password: cfg.Seed.AdminPassword,
			Role:     cfg.Seed.AdminRole,
		},
		otel: otel,
		now:  time.Now,
	}
}

// WithClock replaces the clock used to date the catalog and the admin account.
func (s *Seeder) WithClock(now func() time.Time) *Seeder {
	s.now = now

	return s
}

// Run executes every step in order. Steps after the schema are each guarded by an
// existence check, so repeated runs leave a seeded store untouched.
func (s *Seeder) Run(ctx context.Context) (res Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelBootstrapScopeName, constant.OtelBootstrapScopeName+".Run")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.migrator.Up(ctx); err != nil {
		return res, fmt.Errorf("ensure schema: %w", err)
	}

	if res.RoleCreated, err = s.ensureRole(ctx); err != nil {
		return res, err
	}

	if res.UserCreated, err = s.ensureAdmin(ctx); err != nil {
		return res, err
	}

	if res.LocationsInserted, err = s.ensureLocations(ctx); err != nil {
		return res, err
	}

	scope.SetAttributes(map[string]any{
		"role_created":       res.RoleCreated,
		"user_created":       res.UserCreated,
		"locations_inserted": res.LocationsInserted,
	})

	log.Info().
		Bool("roleCreated", res.RoleCreated).
		Bool("userCreated", res.UserCreated).
		Int("locationsInserted", res.LocationsInserted).
		Msg("Seed completed")

	return res, nil
}

func (s *Seeder) ensureRole(ctx context.Context) (bool, error) {
	exist, err := s.accounts.RoleExists(ctx, s.admin.Role)
	if err != nil {
		return false, fmt.Errorf("check role %s: %w", s.admin.Role, err)
	}

	if exist {
		return false, nil
	}

	if _, err = s.accounts.CreateRole(ctx, s.admin.Role); err != nil {
		return false, fmt.Errorf("create role %s: %w", s.admin.Role, err)
	}

	return true, nil
}

// ensureAdmin creates the admin account and attaches the role. The role is only
// attached to an account created by this run.
func (s *Seeder) ensureAdmin(ctx context.Context) (bool, error) {
	_, err := s.accounts.FindByEmail(ctx, s.admin.Email)
	if err == nil {
		return false, nil
	}

	if !failure.IsNotFound(err) {
		return false, fmt.Errorf("find admin user: %w", err)
	}

	fullName := s.admin.FullName

	user, err := s.accounts.CreateUser(ctx, accountDto.CreateUserRequest{
		Username:       s.admin.Username,
		Email:          s.admin.Email,
		FullName:       &fullName,
		Password:       s.admin.Password,
		EmailConfirmed: true,
	})
	if err != nil {
		return false, fmt.Errorf("create admin user: %w", err)
	}

	role, err := s.accounts.FindRole(ctx, s.admin.Role)
	if err != nil {
		return true, fmt.Errorf("find role %s: %w", s.admin.Role, err)
	}

	if err = s.accounts.AssignRole(ctx, user.ID, role.ID); err != nil {
		return true, fmt.Errorf("assign role %s: %w", s.admin.Role, err)
	}

	return true, nil
}

func (s *Seeder) ensureLocations(ctx context.Context) (int, error) {
	total, err := s.locations.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return 0, fmt.Errorf("count map locations: %w", err)
	}

	if total > 0 {
		return 0, nil
	}

	locations := Catalog(s.now())

	if err = s.locations.InsertBulk(ctx, locations); err != nil {
		return 0, fmt.Errorf("insert map locations: %w", err)
	}

	return len(locations), nil
}
