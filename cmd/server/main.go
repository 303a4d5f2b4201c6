package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bistro/internal/config"
	"bistro/internal/db"
	handlers "bistro/internal/http/handler"
	"bistro/internal/http/middleware"
	"bistro/internal/repo"
	"bistro/internal/service"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// --- Mongo ---
	mc, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mc.Disconnect(sctx)
	}()
	mdb := mc.Database(cfg.MongoDB)

	// Optional admin seed
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := db.SeedAdmin(ctx, mdb, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Printf("admin seed: %v", err)
		}
	}

	// --- Repos ---
	userRepo := repo.NewUserRepoMongo(mdb)
	menuRepo := repo.NewMenuRepoMongo(mdb)
	cartRepo := repo.NewCartRepoMongo(mdb)
	reviewRepo := repo.NewReviewRepoMongo(mdb)

	tokens := service.NewTokenService(cfg.TokenSecret)

	// --- HTTP ---
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "bistro server is running") })

	tokenH := handlers.NewTokenHandler(tokens)
	userH := handlers.NewUserHandler(userRepo)
	menuH := handlers.NewMenuHandler(menuRepo)
	cartH := handlers.NewCartHandler(cartRepo)
	reviewH := handlers.NewReviewHandler(reviewRepo)

	auth := middleware.Auth(tokens)
	admin := middleware.Admin(userRepo)

	r.POST("/jwt", tokenH.Create)

	r.GET("/users", auth, admin, userH.List)
	r.GET("/users/admin/:email", auth, userH.AdminFlag)
	r.PATCH("/users/admin/:id", auth, admin, userH.Promote)
	r.POST("/users", userH.Register)
	r.DELETE("/users/:id", auth, admin, userH.Delete)

	r.GET("/menu", menuH.List)
	r.GET("/menu/:id", menuH.Get)
	r.POST("/menu", auth, admin, menuH.Create)
	r.PATCH("/menu/:id", auth, admin, menuH.Update)
	r.DELETE("/menu/:id", auth, admin, menuH.Delete)

	r.GET("/carts", cartH.List)
	r.POST("/carts", cartH.Create)
	r.DELETE("/carts/:id", cartH.Delete)

	r.GET("/reviews", reviewH.List)

	log.Printf("listening on :%s", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
