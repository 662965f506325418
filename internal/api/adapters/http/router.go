// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"

	"bookvault/internal/api/adapters/http/auth"
	"bookvault/internal/api/adapters/http/books"
	"bookvault/internal/api/adapters/http/middleware"
	"bookvault/internal/api/ports/api"
	svc "bookvault/internal/api/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, authUseCase api.AuthUseCase, libraryUseCase api.LibraryUseCase, tokenSvc svc.TokenService, staticDir string) {
	authHandler := auth.NewHandler(authUseCase)
	booksHandler := books.NewHandler(libraryUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Защищенные маршруты.
	userRoutes := apiV1.Group("/user")
	userRoutes.Use(middleware.NewAuthMiddleware(tokenSvc))
	userRoutes.Get("/me", booksHandler.Me)

	// Маршруты коллекции книг (требуют авторизации).
	booksRoutes := apiV1.Group("/books")
	booksRoutes.Use(middleware.NewAuthMiddleware(tokenSvc))
	booksRoutes.Post("/", booksHandler.SaveBook)
	booksRoutes.Delete("/:book_id", booksHandler.RemoveBook)

	// Статические файлы клиента в production-сборке.
	if staticDir != "" {
		app.Get("/*", static.New(staticDir))
	}

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
