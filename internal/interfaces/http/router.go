package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pranshau/Rating-App/internal/application/auth"
	"github.com/Pranshau/Rating-App/internal/application/usecase"
	"github.com/Pranshau/Rating-App/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	StoreUC   *usecase.StoreUseCase
	RatingUC  *usecase.RatingUseCase
	ReportUC  *usecase.ReportUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
// El Role Guard (RequireRole) se monta a nivel de grupo, siempre después de
// AuthMiddleware: ningún handler repite chequeos de rol por su cuenta.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/register-owner", authHandler.RegisterOwner)
	authGroup.Post("/login", authHandler.Login)

	storeHandler := NewStoreHandler(deps.StoreUC, deps.RatingUC)
	userHandler := NewUserHandler(deps.UserUC)

	// Listado público: la sesión es opcional (agrega user_rating si existe)
	stores := api.Group("/stores")
	stores.Get("/", OptionalAuthMiddleware(deps.JWTSecret), storeHandler.List)

	// Calificar requiere sesión con rol user
	stores.Post("/:id/rating",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleUser),
		storeHandler.SubmitRating,
	)

	// Cambio de contraseña: cualquier sesión válida. El frontend histórico
	// llama tanto /users/password como /stores/password; ambas sirven.
	stores.Put("/password", AuthMiddleware(deps.JWTSecret), userHandler.ChangePassword)
	api.Put("/users/password", AuthMiddleware(deps.JWTSecret), userHandler.ChangePassword)

	// Panel admin
	adminHandler := NewAdminHandler(deps.UserUC, deps.StoreUC)
	admin := api.Group("/admin",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin),
	)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Post("/users", adminHandler.CreateUser)
	admin.Get("/stores", adminHandler.ListStores)
	admin.Post("/stores", adminHandler.CreateStore)

	// Dashboard del dueño
	ownerHandler := NewOwnerHandler(deps.StoreUC, deps.RatingUC, deps.ReportUC)
	owner := api.Group("/owner",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleOwner),
	)
	owner.Get("/stores", ownerHandler.ListStores)
	owner.Get("/stores/:id/ratings", ownerHandler.ListRatings)
	owner.Get("/stores/:id/report", ownerHandler.Report)
}
