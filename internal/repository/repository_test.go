package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/deppfellow/listings-api/internal/database"
	"github.com/deppfellow/listings-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDB is nil when neither LISTINGS_TEST_DATABASE_URL nor Docker is
// available; the integration tests skip in that case.
var testDB *database.Database

func TestMain(m *testing.M) {
	os.Exit(runTests(m))
}

func runTests(m *testing.M) int {
	ctx := context.Background()
	logger := zerolog.Nop()

	dsn := os.Getenv("LISTINGS_TEST_DATABASE_URL")
	if dsn == "" {
		pool, err := dockertest.NewPool("")
		if err != nil || pool.Client.Ping() != nil {
			return m.Run()
		}
		pool.MaxWait = 2 * time.Minute

		resource, err := pool.RunWithOptions(&dockertest.RunOptions{
			Repository: "postgres",
			Tag:        "16-alpine",
			Env: []string{
				"POSTGRES_USER=listings",
				"POSTGRES_PASSWORD=listings",
				"POSTGRES_DB=listings_test",
			},
		}, func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not start postgres: %s\n", err)
			return 1
		}
		defer func() { _ = pool.Purge(resource) }()

		dsn = fmt.Sprintf("postgres://listings:listings@%s/listings_test?sslmode=disable", resource.GetHostPort("5432/tcp"))

		if err := pool.Retry(func() error {
			conn, err := pgx.Connect(ctx, dsn)
			if err != nil {
				return err
			}
			return conn.Close(ctx)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "could not connect to postgres: %s\n", err)
			return 1
		}
	}

	if err := database.Migrate(ctx, &logger, dsn); err != nil {
		fmt.Fprintf(os.Stderr, "could not migrate: %s\n", err)
		return 1
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open pool: %s\n", err)
		return 1
	}
	testDB = database.NewFromPool(pool, &logger)
	defer pool.Close()

	return m.Run()
}

// setup empties every table and returns the repositories under test.
func setup(t *testing.T) (*UserRepository, *ListingRepository, *SavedListingRepository) {
	t.Helper()
	if testDB == nil {
		t.Skip("postgres unavailable: set LISTINGS_TEST_DATABASE_URL or start Docker")
	}

	_, err := testDB.Pool.Exec(context.Background(),
		`TRUNCATE saved_listings, listings, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return NewUserRepository(testDB), NewListingRepository(testDB), NewSavedListingRepository(testDB)
}

func createUser(t *testing.T, users *UserRepository, name string) *model.User {
	t.Helper()
	user, err := users.CreateUser(context.Background(), &model.CreateUserPayload{
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return user
}

func createListing(t *testing.T, listings *ListingRepository, address string) *model.Listing {
	t.Helper()
	listing, err := listings.CreateListing(context.Background(), &model.CreateListingPayload{
		Address:  address,
		Suburb:   "Carlton",
		State:    "VIC",
		Postcode: 3053,
	})
	require.NoError(t, err)
	return listing
}

func TestDatabase_SchemaIsCurrent(t *testing.T) {
	setup(t)

	assert.NoError(t, testDB.CheckSchema(context.Background()))
}

func TestUserRepository_CRUD(t *testing.T) {
	users, _, _ := setup(t)
	ctx := context.Background()

	created := createUser(t, users, "jane")
	assert.Positive(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Empty(t, created.SavedListings)

	email := "jane@work.test"
	require.NoError(t, users.UpdateUser(ctx, &model.UpdateUserPayload{ID: created.ID, Email: &email}))

	got, err := users.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane", got.Username)
	assert.Equal(t, email, got.Email)
	assert.NotNil(t, got.SavedListings)

	require.NoError(t, users.DeleteUser(ctx, created.ID))

	_, err = users.GetUser(ctx, created.ID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.ErrorIs(t, users.DeleteUser(ctx, created.ID), pgx.ErrNoRows)
	assert.ErrorIs(t, users.UpdateUser(ctx, &model.UpdateUserPayload{ID: created.ID, Email: &email}), pgx.ErrNoRows)
}

func TestListingRepository_CRUD(t *testing.T) {
	_, listings, _ := setup(t)
	ctx := context.Background()

	created := createListing(t, listings, "1 Lygon St")

	postcode := 3000
	require.NoError(t, listings.UpdateListing(ctx, &model.UpdateListingPayload{ID: created.ID, Postcode: &postcode}))

	got, err := listings.GetListing(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "1 Lygon St", got.Address)
	assert.Equal(t, 3000, got.Postcode)

	all, err := listings.ListListings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, listings.DeleteListing(ctx, created.ID))
	assert.ErrorIs(t, listings.DeleteListing(ctx, created.ID), pgx.ErrNoRows)
}

func TestSavedListingRepository_CreateIsIdempotent(t *testing.T) {
	users, listings, saved := setup(t)
	ctx := context.Background()

	user := createUser(t, users, "jane")
	listing := createListing(t, listings, "1 Lygon St")

	first, err := saved.CreateSavedListing(ctx, user.ID, listing.ID)
	require.NoError(t, err)

	second, err := saved.CreateSavedListing(ctx, user.ID, listing.ID)
	require.NoError(t, err)
	assert.True(t, first.SavedAt.Equal(second.SavedAt))

	all, err := saved.GetSavedListingsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "jane", all[0].User.Username)
	assert.Equal(t, "1 Lygon St", all[0].Listing.Address)
}

func TestSavedListingRepository_CreateMissingReference(t *testing.T) {
	users, _, saved := setup(t)

	user := createUser(t, users, "jane")

	_, err := saved.CreateSavedListing(context.Background(), user.ID, 999)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestSavedListingRepository_UpdateSwapsListing(t *testing.T) {
	users, listings, saved := setup(t)
	ctx := context.Background()

	user := createUser(t, users, "jane")
	oldListing := createListing(t, listings, "1 Lygon St")
	newListing := createListing(t, listings, "2 Lygon St")

	_, err := saved.CreateSavedListing(ctx, user.ID, oldListing.ID)
	require.NoError(t, err)

	require.NoError(t, saved.UpdateSavedListing(ctx, user.ID, oldListing.ID, newListing.ID))

	all, err := saved.GetSavedListingsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, newListing.ID, all[0].ListingID)
}

func TestSavedListingRepository_UpdateRollsBackOnMissingListing(t *testing.T) {
	users, listings, saved := setup(t)
	ctx := context.Background()

	user := createUser(t, users, "jane")
	oldListing := createListing(t, listings, "1 Lygon St")

	_, err := saved.CreateSavedListing(ctx, user.ID, oldListing.ID)
	require.NoError(t, err)

	err = saved.UpdateSavedListing(ctx, user.ID, oldListing.ID, 999)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	all, err := saved.GetSavedListingsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, oldListing.ID, all[0].ListingID)
}

func TestSavedListingRepository_UpdateMissingOldAssociation(t *testing.T) {
	users, listings, saved := setup(t)

	user := createUser(t, users, "jane")
	listing := createListing(t, listings, "1 Lygon St")

	err := saved.UpdateSavedListing(context.Background(), user.ID, 999, listing.ID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestSavedListingRepository_CountAndCascade(t *testing.T) {
	users, listings, saved := setup(t)
	ctx := context.Background()

	jane := createUser(t, users, "jane")
	john := createUser(t, users, "john")
	listing := createListing(t, listings, "1 Lygon St")

	for _, u := range []*model.User{jane, john} {
		_, err := saved.CreateSavedListing(ctx, u.ID, listing.ID)
		require.NoError(t, err)
	}

	count, err := saved.CountByListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, users.DeleteUser(ctx, john.ID))

	count, err = saved.CountByListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, listings.DeleteListing(ctx, listing.ID))

	all, err := saved.GetSavedListingsByUser(ctx, jane.ID)
	require.NoError(t, err)
	assert.Empty(t, all)

	count, err = saved.CountByListing(ctx, 999)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUserRepository_ListIncludesSavedListings(t *testing.T) {
	users, listings, saved := setup(t)
	ctx := context.Background()

	jane := createUser(t, users, "jane")
	createUser(t, users, "john")
	listing := createListing(t, listings, "1 Lygon St")

	_, err := saved.CreateSavedListing(ctx, jane.ID, listing.ID)
	require.NoError(t, err)

	all, err := users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Len(t, all[0].SavedListings, 1)
	assert.NotNil(t, all[1].SavedListings)
	assert.Empty(t, all[1].SavedListings)
}

// 3000000000 does not fit in a 32-bit integer; such ids must still resolve
// to "not found" rather than fail to encode.
func TestRepositories_IDsBeyondInt32(t *testing.T) {
	users, listings, saved := setup(t)
	ctx := context.Background()
	const bigID = 3_000_000_000

	listing := createListing(t, listings, "1 Lygon St")

	_, err := users.GetUser(ctx, bigID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.ErrorIs(t, users.DeleteUser(ctx, bigID), pgx.ErrNoRows)

	_, err = listings.GetListing(ctx, bigID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	_, err = saved.CreateSavedListing(ctx, bigID, listing.ID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	all, err := saved.GetSavedListingsByUser(ctx, bigID)
	require.NoError(t, err)
	assert.Empty(t, all)

	count, err := saved.CountByListing(ctx, bigID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
