package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"photobook/internal/config"
	"photobook/internal/database"
	"photobook/internal/domain"
	"photobook/internal/middleware"
	"photobook/internal/modules/admin"
	"photobook/internal/modules/agreement"
	"photobook/internal/modules/auth"
	"photobook/internal/modules/post"
	"photobook/internal/modules/profile"
	jwtsvc "photobook/internal/pkg/jwt"
	"photobook/internal/pkg/upload"
	"photobook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Admin{},
		&domain.Profile{},
		&domain.Post{},
		&domain.Agreement{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	agreementRepo := repository.NewAgreementRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	saver := upload.NewSaver(cfg.UploadDir)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService, saver)

	adminService := admin.NewService(adminRepo, userRepo, profileRepo, j)
	adminHandler := admin.NewHandler(adminService)

	profileService := profile.NewService(profileRepo, saver)
	profileHandler := profile.NewHandler(profileService)

	postService := post.NewService(postRepo)
	postHandler := post.NewHandler(postService, saver)

	agreementService := agreement.NewService(agreementRepo, userRepo)
	agreementHandler := agreement.NewHandler(agreementService)

	// Seed the back-office account once at startup; a restart is a no-op.
	if err := adminService.EnsureDefaultAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal(err)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		adminHandler.RegisterPublicRoutes(api)
		profileHandler.RegisterRoutes(api)
		postHandler.RegisterPublicRoutes(api)

		// identity-guarded
		protected := api.Group("")
		protected.Use(middleware.JWTAuth(j, userRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			postHandler.RegisterProtectedRoutes(protected)
			agreementHandler.RegisterRoutes(protected)
		}

		// admin-guarded
		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.AdminAuth(j, adminRepo))
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
