package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"hello-madurai/pkg/config"
	"hello-madurai/pkg/database"
	"hello-madurai/pkg/jwt"
	"hello-madurai/pkg/logger"
	"hello-madurai/services/content/internal/entity"
	"hello-madurai/services/content/internal/repo/persistent"
	"hello-madurai/services/content/internal/usecase"
)

type seedOptions struct {
	AdminEmail    string
	AdminName     string
	AdminPassword string
}

func main() {
	var opts seedOptions
	flag.StringVar(&opts.AdminEmail, "email", os.Getenv("SEED_ADMIN_EMAIL"), "Admin email")
	flag.StringVar(&opts.AdminName, "name", os.Getenv("SEED_ADMIN_NAME"), "Admin display name")
	flag.StringVar(&opts.AdminPassword, "password", os.Getenv("SEED_ADMIN_PASSWORD"), "Admin password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	repos := persistent.NewRepositories(db)
	catalog := usecase.NewCatalog(repos, usecase.Deps{Logger: log})
	auth := usecase.NewAuthUseCase(repos.Admins, jwt.NewService(cfg.JWTSecret), log)

	if err := seedDatabase(context.Background(), repos, catalog, auth, opts, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(ctx context.Context, repos *persistent.Repositories, catalog *usecase.Catalog, auth usecase.AuthUseCase, opts seedOptions, log *logger.Logger) error {
	if opts.AdminEmail != "" {
		_, err := repos.Admins.GetByEmail(ctx, opts.AdminEmail)
		switch {
		case err == nil:
			log.Info("Admin %s already exists, skipping", opts.AdminEmail)
		case errors.Is(err, entity.ErrNotFound):
			if _, err := auth.CreateAdmin(ctx, opts.AdminEmail, opts.AdminName, opts.AdminPassword); err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}
			log.Info("Created admin %s", opts.AdminEmail)
		default:
			return fmt.Errorf("failed to look up admin: %w", err)
		}
	} else {
		log.Warn("No admin email given, skipping admin account")
	}

	_, collections, err := catalog.MagazineCollections.List(ctx, entity.ListFilter{Limit: 1})
	if err != nil {
		return err
	}
	if collections == 0 {
		if _, err := catalog.MagazineCollections.Create(ctx, &entity.MagazineCollection{
			Name:   "General",
			NameTa: "பொது",
		}); err != nil {
			return fmt.Errorf("failed to create default magazine collection: %w", err)
		}
		log.Info("Created default magazine collection")
	}

	_, folders, err := catalog.RadioFolders.List(ctx, entity.ListFilter{Limit: 1})
	if err != nil {
		return err
	}
	if folders == 0 {
		if _, err := catalog.RadioFolders.Create(ctx, &entity.RadioFolder{
			Name:   "General",
			NameTa: "பொது",
		}); err != nil {
			return fmt.Errorf("failed to create default radio folder: %w", err)
		}
		log.Info("Created default radio folder")
	}

	return nil
}
