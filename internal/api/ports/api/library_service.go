package api

import (
	"context"

	"bookvault/internal/api/domain/entities"
	"bookvault/internal/api/domain/services"
)

// LibraryUseCase определяет основной порт для операций с коллекцией
// сохраненных книг. Все операции требуют проверенного AuthContext.
type LibraryUseCase interface {
	Me(ctx context.Context, auth *services.AuthContext) (*entities.User, error)

	SaveBook(ctx context.Context, auth *services.AuthContext, book *entities.SavedBook) (*entities.User, error)

	RemoveBook(ctx context.Context, auth *services.AuthContext, bookID string) (*entities.User, error)
}
