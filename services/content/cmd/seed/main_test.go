package main

import (
	"context"
	"io"
	"testing"

	"hello-madurai/pkg/jwt"
	"hello-madurai/pkg/logger"
	"hello-madurai/services/content/internal/entity"
	"hello-madurai/services/content/internal/repo/persistent"
	"hello-madurai/services/content/internal/testutil"
	"hello-madurai/services/content/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDatabase_Idempotent(t *testing.T) {
	log := logger.NewWithOptions(logger.Options{Output: io.Discard})
	repos := persistent.NewRepositories(testutil.NewDB(t))
	catalog := usecase.NewCatalog(repos, usecase.Deps{Logger: log})
	auth := usecase.NewAuthUseCase(repos.Admins, jwt.NewService("seed-secret"), log)
	opts := seedOptions{AdminEmail: "Editor@HelloMadurai.in", AdminName: "Editor", AdminPassword: "meenakshi-2026"}
	ctx := context.Background()

	require.NoError(t, seedDatabase(ctx, repos, catalog, auth, opts, log))
	require.NoError(t, seedDatabase(ctx, repos, catalog, auth, opts, log))

	admin, err := repos.Admins.GetByEmail(ctx, "editor@hellomadurai.in")
	require.NoError(t, err)
	assert.Equal(t, "Editor", admin.Name)

	token, _, err := auth.Login(ctx, "editor@hellomadurai.in", "meenakshi-2026")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	collections, total, err := catalog.MagazineCollections.List(ctx, entity.ListFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "General", collections[0].Name)

	_, total, err = catalog.RadioFolders.List(ctx, entity.ListFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestSeedDatabase_WeakPassword(t *testing.T) {
	log := logger.NewWithOptions(logger.Options{Output: io.Discard})
	repos := persistent.NewRepositories(testutil.NewDB(t))
	catalog := usecase.NewCatalog(repos, usecase.Deps{Logger: log})
	auth := usecase.NewAuthUseCase(repos.Admins, jwt.NewService("seed-secret"), log)

	err := seedDatabase(context.Background(), repos, catalog, auth,
		seedOptions{AdminEmail: "editor@hellomadurai.in", AdminPassword: "short"}, log)

	assert.ErrorIs(t, err, entity.ErrValidation)
}
