package main

import (
	"hello-madurai/pkg/config"
	app "hello-madurai/services/content/internal/app"
)

// @title           Hello Madurai Content API
// @version         1.0
// @description     Bilingual news, events, jobs, directory and media content for Hello Madurai

// @contact.name   Hello Madurai
// @contact.url    https://hellomadurai.in

// @host      localhost:8001
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
