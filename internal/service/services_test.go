package service

import (
	"testing"

	"github.com/deppfellow/listings-api/internal/repository"
	"github.com/deppfellow/listings-api/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices_WithoutJobs(t *testing.T) {
	services := NewServices(&server.Server{Logger: nopLogger()}, &repository.Repositories{})

	require.NotNil(t, services.Users)
	assert.NotNil(t, services.Listings)
	assert.NotNil(t, services.SavedListings)
	assert.Nil(t, services.Users.tasks)
}
