// Package books содержит HTTP обработчики для коллекции сохраненных книг.
package books

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"bookvault/internal/api/adapters/http/middleware"
	"bookvault/internal/api/app/dto"
	"bookvault/internal/api/domain/entities"
	domain "bookvault/internal/api/domain/services"
	"bookvault/internal/api/ports/api"
	"bookvault/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerMe         = "books handler: me"
	LogHandlerSaveBook   = "books handler: save book"
	LogHandlerRemoveBook = "books handler: remove book"

	ErrMsgInvalidBookID      = "invalid book id"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgNotAuthenticated   = "not authenticated"
	ErrMsgFailedToServe      = "failed to serve request"
)

// Handler обработчик HTTP-запросов для работы с коллекцией книг.
type Handler struct {
	libraryUseCase api.LibraryUseCase
}

// NewHandler создает новый экземпляр обработчика книг.
func NewHandler(libraryUseCase api.LibraryUseCase) *Handler {
	return &Handler{
		libraryUseCase: libraryUseCase,
	}
}

func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func authFromLocals(ctx fiber.Ctx) *domain.AuthContext {
	auth, ok := ctx.Locals(middleware.AuthContextKey).(*domain.AuthContext)
	if !ok {
		return nil
	}
	return auth
}

// Me обрабатывает запрос профиля аутентифицированного пользователя.
// Исчезнувший аккаунт возвращается как {"user": null}, не как ошибка.
func (h *Handler) Me(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Me"))
	log.Debug(requestCtx, LogHandlerMe)

	user, err := h.libraryUseCase.Me(requestCtx, authFromLocals(ctx))
	if err != nil {
		log.Error(requestCtx, ErrMsgFailedToServe, zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.UserResponse{User: dto.UserFromEntity(user)}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// SaveBook обрабатывает запрос на сохранение книги в коллекцию.
func (h *Handler) SaveBook(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.SaveBook"))
	log.Debug(requestCtx, LogHandlerSaveBook)

	var req dto.SaveBookRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	book := &entities.SavedBook{
		BookID:      req.BookID,
		Title:       req.Title,
		Authors:     req.Authors,
		Description: req.Description,
		Image:       req.Image,
		Link:        req.Link,
	}

	user, err := h.libraryUseCase.SaveBook(requestCtx, authFromLocals(ctx), book)
	if err != nil {
		log.Error(requestCtx, ErrMsgFailedToServe, zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.UserResponse{User: dto.UserFromEntity(user)}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// RemoveBook обрабатывает запрос на удаление книги из коллекции.
// Удаление отсутствующей книги завершается успешно.
func (h *Handler) RemoveBook(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.RemoveBook"))
	log.Debug(requestCtx, LogHandlerRemoveBook)

	bookID := ctx.Params("book_id")
	if bookID == "" {
		log.Error(requestCtx, ErrMsgInvalidBookID)
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrMsgInvalidBookID)
	}

	user, err := h.libraryUseCase.RemoveBook(requestCtx, authFromLocals(ctx), bookID)
	if err != nil {
		log.Error(requestCtx, ErrMsgFailedToServe, zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.UserResponse{User: dto.UserFromEntity(user)}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// handleError преобразует доменные ошибки в HTTP статусы.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrMsgNotAuthenticated)
	case errors.Is(err, entities.ErrEmptyBookID), errors.Is(err, entities.ErrEmptyBookTitle):
		return sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, entities.ErrUserNotFound):
		return sendErrorResponse(ctx, http.StatusNotFound, entities.ErrUserNotFound.Error())
	default:
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrMsgFailedToServe)
	}
}
