package bootstrap_test

import (
	"context"
	"errors"
	"lumen/config"
	"lumen/infras/otel/mocks"
	"lumen/internal/bootstrap"
	accountDto "lumen/internal/domains/account/model/dto"
	mapModel "lumen/internal/domains/maplocation/model"
	gDto "lumen/shared/dto"
	"lumen/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("connection refused")

type fakeMigrator struct {
	calls int
	err   error
}

func (m *fakeMigrator) Up(_ context.Context) error {
	m.calls++

	return m.err
}

type fakeAccounts struct {
	roles     map[string]int64
	users     map[string]accountDto.UserResponse
	passwords map[string]string
	links     map[[2]int64]bool
	findErr   error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		roles:     map[string]int64{},
		users:     map[string]accountDto.UserResponse{},
		passwords: map[string]string{},
		links:     map[[2]int64]bool{},
	}
}

func (a *fakeAccounts) CreateUser(_ context.Context, req accountDto.CreateUserRequest) (accountDto.UserResponse, error) {
	if _, ok := a.users[req.Email]; ok {
		return accountDto.UserResponse{}, failure.Conflict("user already exists")
	}

	user := accountDto.UserResponse{
		ID:             int64(len(a.users) + 1),
		Username:       req.Username,
		Email:          req.Email,
		FullName:       req.FullName,
		EmailConfirmed: req.EmailConfirmed,
	}
	a.users[req.Email] = user
	a.passwords[req.Email] = req.Password

	return user, nil
}

func (a *fakeAccounts) FindByEmail(_ context.Context, email string) (accountDto.UserResponse, error) {
	if a.findErr != nil {
		return accountDto.UserResponse{}, a.findErr
	}

	user, ok := a.users[email]
	if !ok {
		return accountDto.UserResponse{}, failure.NotFound("user not found")
	}

	return user, nil
}

func (a *fakeAccounts) RoleExists(_ context.Context, name string) (bool, error) {
	_, ok := a.roles[name]

	return ok, nil
}

func (a *fakeAccounts) CreateRole(_ context.Context, name string) (accountDto.RoleResponse, error) {
	if _, ok := a.roles[name]; ok {
		return accountDto.RoleResponse{}, failure.Conflict("role already exists")
	}

	a.roles[name] = int64(len(a.roles) + 1)

	return accountDto.RoleResponse{ID: a.roles[name], Name: name}, nil
}

func (a *fakeAccounts) FindRole(_ context.Context, name string) (accountDto.RoleResponse, error) {
	id, ok := a.roles[name]
	if !ok {
		return accountDto.RoleResponse{}, failure.NotFound("role not found")
	}

	return accountDto.RoleResponse{ID: id, Name: name}, nil
}

func (a *fakeAccounts) AssignRole(_ context.Context, userID, roleID int64) error {
	a.links[[2]int64{userID, roleID}] = true

	return nil
}

type fakeLocations struct {
	rows    []mapModel.MapLocation
	inserts int
	err     error
}

func (l *fakeLocations) Count(_ context.Context, _ gDto.FilterGroup) (int, error) {
	return len(l.rows), l.err
}

func (l *fakeLocations) InsertBulk(_ context.Context, models []mapModel.MapLocation) error {
	l.inserts++
	l.rows = append(l.rows, models...)

	return nil
}

func seedConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Seed.AdminEmail = "admin@lumenlighting.com"
	cfg.Seed.AdminUsername = "admin"
	cfg.Seed.AdminFullName = "Administrator"
	cfg.Seed.AdminPassword = "Lumen2024!"
	cfg.Seed.AdminRole = "Admin"

	return cfg
}

func TestSeeder_Run_IsIdempotent(t *testing.T) {
	migrator := &fakeMigrator{}
	accounts := newFakeAccounts()
	locations := &fakeLocations{}

	now := time.Date(2024, 11, 20, 12, 0, 0, 0, time.UTC)
	seeder := bootstrap.New(migrator, accounts, locations, seedConfig(), mocks.NewOtel()).
		WithClock(func() time.Time { return now })

	first, err := seeder.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, bootstrap.Result{RoleCreated: true, UserCreated: true, LocationsInserted: 24}, first)

	second, err := seeder.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, bootstrap.Result{}, second)

	assert.Equal(t, 2, migrator.calls)
	assert.Len(t, accounts.roles, 1)
	assert.Len(t, accounts.users, 1)
	assert.Len(t, locations.rows, 24)
	assert.Equal(t, 1, locations.inserts)

	admin := accounts.users["admin@lumenlighting.com"]
	assert.Equal(t, "admin", admin.Username)
	assert.True(t, admin.EmailConfirmed)
	assert.Equal(t, "Lumen2024!", accounts.passwords[admin.Email])
	assert.True(t, accounts.links[[2]int64{admin.ID, accounts.roles["Admin"]}])
}

func TestSeeder_Run_ExistingAdminKeepsRoles(t *testing.T) {
	accounts := newFakeAccounts()
	accounts.users["admin@lumenlighting.com"] = accountDto.UserResponse{ID: 9, Email: "admin@lumenlighting.com"}

	locations := &fakeLocations{rows: []mapModel.MapLocation{{ID: 1}}}

	res, err := bootstrap.New(&fakeMigrator{}, accounts, locations, seedConfig(), mocks.NewOtel()).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, bootstrap.Result{RoleCreated: true}, res)
	assert.Empty(t, accounts.links)
	assert.Len(t, locations.rows, 1)
}

func TestSeeder_Run_StopsOnFailure(t *testing.T) {
	t.Run("schema", func(t *testing.T) {
		accounts := newFakeAccounts()

		_, err := bootstrap.New(&fakeMigrator{err: errStoreDown}, accounts, &fakeLocations{}, seedConfig(), mocks.NewOtel()).
			Run(context.Background())

		require.ErrorIs(t, err, errStoreDown)
		assert.Empty(t, accounts.roles)
	})

	t.Run("admin lookup", func(t *testing.T) {
		accounts := newFakeAccounts()
		accounts.findErr = failure.StorageUnavailable(errStoreDown)

		locations := &fakeLocations{}

		_, err := bootstrap.New(&fakeMigrator{}, accounts, locations, seedConfig(), mocks.NewOtel()).
			Run(context.Background())

		require.Error(t, err)
		assert.True(t, failure.IsStorageUnavailable(err))
		assert.Empty(t, accounts.users)
		assert.Empty(t, locations.rows)
	})

	t.Run("location count", func(t *testing.T) {
		locations := &fakeLocations{err: errStoreDown}

		_, err := bootstrap.New(&fakeMigrator{}, newFakeAccounts(), locations, seedConfig(), mocks.NewOtel()).
			Run(context.Background())

		require.ErrorIs(t, err, errStoreDown)
		assert.Zero(t, locations.inserts)
	})
}

func TestCatalog(t *testing.T) {
	now := time.Date(2024, 11, 20, 12, 0, 0, 0, time.UTC)

	locations := bootstrap.Catalog(now)
	require.Len(t, locations, 24)

	serviceTypes := map[string]bool{}
	statuses := map[string]bool{}

	for _, location := range locations {
		serviceTypes[location.ServiceType] = true
		statuses[location.Status] = true

		assert.Equal(t, now, location.CreatedDate)
		assert.Zero(t, location.ID)
	}

	assert.Len(t, serviceTypes, 6)
	assert.Len(t, statuses, 3)

	first := locations[0]
	assert.Equal(t, "Johnson Residence", first.Name)
	assert.Equal(t, now.AddDate(0, 0, -5), first.Date)
	assert.InDelta(t, 40.7128, first.Latitude, 0)
	assert.InDelta(t, -74.0060, first.Longitude, 0)

	last := locations[23]
	assert.Equal(t, "Rodriguez Estate", last.Name)
	assert.Equal(t, now.AddDate(0, 0, 40), last.Date)
}
