package main

import (
	"context"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/birdband/backend/internal/cache"
	"github.com/birdband/backend/internal/config"
	"github.com/birdband/backend/internal/db"
	"github.com/birdband/backend/internal/handler"
	"github.com/birdband/backend/internal/model"
	"github.com/birdband/backend/internal/service"
)

// @title Bird Band Registry API
// @version 1.0
// @description Backend for a bird breeding registry: users, birds, breeders, owners, organizations and breeding pairs, with cookie-based JWT auth.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	ctx := context.Background()

	pg, err := db.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pg.Close()

	if err := pg.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	store, err := cache.New(cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer store.Close()

	tokens, err := service.NewTokenCodec(cfg.Auth, store)
	if err != nil {
		log.Fatalf("token codec: %v", err)
	}

	authSvc := service.NewAuthService(pg, tokens)
	userSvc := service.NewUserService(pg)
	birdSvc := service.NewBirdService(pg, store)
	breederSvc := service.NewBreederService(pg, store)
	ownerSvc := service.NewOwnerService(pg)
	orgSvc := service.NewOrganizationService(pg)
	pairSvc := service.NewPairService(pg)
	roleSvc := service.NewRoleService(pg)
	adminSvc := service.NewAdminService(pg, store)

	cookies, err := handler.NewCookieSettings(cfg.Auth)
	if err != nil {
		log.Fatalf("cookie settings: %v", err)
	}

	authH := handler.NewAuthHandler(authSvc, cookies)
	userH := handler.NewUserHandler(userSvc)
	birdH := handler.NewBirdHandler(birdSvc)
	breederH := handler.NewBreederHandler(breederSvc)
	ownerH := handler.NewOwnerHandler(ownerSvc)
	orgH := handler.NewOrganizationHandler(orgSvc)
	pairH := handler.NewPairHandler(pairSvc)
	roleH := handler.NewRoleHandler(roleSvc)
	adminH := handler.NewAdminHandler(adminSvc, userSvc)
	healthH := handler.NewHealthHandler(pg, store)

	router := gin.Default()
	router.Use(handler.CORSMiddleware(strings.Split(cfg.Server.AllowedOrigins, ",")))

	// Public routes.
	router.GET("/", healthH.Root)
	router.GET("/health", healthH.Health)
	router.GET("/health/db", healthH.HealthDB)
	router.GET("/health/redis", healthH.HealthRedis)
	router.POST("/auth/login", authH.Login)
	router.POST("/auth/refresh", authH.Refresh)
	router.POST("/auth/logout", authH.Logout)
	router.POST("/users/register", userH.Register)

	// Everything below requires a valid access token.
	authed := router.Group("/", handler.AuthMiddleware(authSvc))

	authed.GET("/auth/me", authH.Me)

	users := authed.Group("/users")
	{
		users.GET("", userH.List)
		users.GET("/me", userH.Me)
		users.GET("/:username", userH.GetByUsername)
		users.PUT("/:user_id", userH.Update)
		users.DELETE("/:user_id", userH.Delete)
	}

	birds := authed.Group("/birds")
	{
		birds.POST("", birdH.Create)
		birds.GET("", birdH.List)
		birds.GET("/stats/total", birdH.Stats)
		birds.GET("/breeder/:breeder_id", birdH.ListByBreeder)
		birds.GET("/owner/:owner_id", birdH.ListByOwner)
		birds.GET("/sex/:sex", birdH.ListBySex)
		birds.GET("/band/:band_id", birdH.GetByBand)
		birds.GET("/:bird_id", birdH.Get)
		birds.PUT("/:bird_id", birdH.Update)
		birds.DELETE("/:bird_id", birdH.Delete)
	}

	breeders := authed.Group("/breeders")
	{
		breeders.POST("", breederH.Create)
		breeders.GET("", breederH.List)
		breeders.GET("/stats/total", breederH.Stats)
		breeders.GET("/search/:name", breederH.Search)
		breeders.GET("/code/:breeder_code", breederH.GetByCode)
		breeders.GET("/:breeder_id", breederH.Get)
		breeders.PUT("/:breeder_id", breederH.Update)
		breeders.DELETE("/:breeder_id", breederH.Delete)
	}

	owners := authed.Group("/owners")
	{
		owners.POST("", ownerH.Create)
		owners.GET("", ownerH.List)
		owners.GET("/search/:name", ownerH.Search)
		owners.GET("/:owner_id", ownerH.Get)
		owners.PUT("/:owner_id", ownerH.Update)
		owners.DELETE("/:owner_id", ownerH.Delete)
	}

	organizations := authed.Group("/organizations")
	{
		organizations.POST("", orgH.Create)
		organizations.GET("", orgH.List)
		organizations.GET("/code/:organization_code", orgH.GetByCode)
		organizations.GET("/:organization_id", orgH.Get)
		organizations.PUT("/:organization_id", orgH.Update)
		organizations.DELETE("/:organization_id", orgH.Delete)
	}

	pairs := authed.Group("/pairs")
	{
		pairs.POST("", pairH.Create)
		pairs.GET("", pairH.List)
		pairs.GET("/stats/total", pairH.Stats)
		pairs.GET("/season/:season", pairH.ListBySeason)
		pairs.GET("/season/:season/round/:round", pairH.ListBySeasonAndRound)
		pairs.GET("/bird/:bird_id", pairH.ListByBird)
		pairs.GET("/cock/:bird_id", pairH.ListByCock)
		pairs.GET("/hen/:bird_id", pairH.ListByHen)
		pairs.GET("/:pair_id", pairH.Get)
		pairs.PUT("/:pair_id", pairH.Update)
		pairs.DELETE("/:pair_id", pairH.Delete)
	}

	roles := authed.Group("/roles")
	{
		roles.GET("", roleH.List)
		roles.GET("/name/:role_name", roleH.GetByName)
		roles.GET("/user/:user_id", roleH.UserRoles)
		roles.GET("/:role_id", roleH.Get)
	}

	// Role management and system administration are admin-only.
	admin := authed.Group("/", handler.RequireRole(roleSvc, model.RoleAdmin))
	{
		admin.POST("/roles", roleH.Create)
		admin.PUT("/roles/:role_id", roleH.Update)
		admin.DELETE("/roles/:role_id", roleH.Delete)
		admin.POST("/roles/:role_id/assign/:user_id", roleH.Assign)
		admin.DELETE("/roles/:role_id/assign/:user_id", roleH.Unassign)

		admin.GET("/admin/stats", adminH.Stats)
		admin.GET("/admin/users", adminH.ListUsers)
		admin.POST("/admin/users/:user_id/disable", adminH.DisableUser)
		admin.POST("/admin/users/:user_id/enable", adminH.EnableUser)
		admin.GET("/admin/redis/info", adminH.RedisInfo)
		admin.GET("/admin/cache/stats", adminH.CacheStats)
		admin.POST("/admin/cache/flush", adminH.FlushCache)
		admin.GET("/admin/health", adminH.Health)
	}

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
