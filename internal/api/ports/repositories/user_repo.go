package repositories

import (
	"context"

	"bookvault/internal/api/domain/entities"
)

// UserRepository определяет интерфейс для операций хранилища пользователей.
// Методы AddSavedBook и RemoveSavedBook являются атомарными операциями
// над множеством книг пользователя: повторное добавление существующего
// bookID и удаление отсутствующего не являются ошибкой.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	AddSavedBook(ctx context.Context, userID string, book *entities.SavedBook) (*entities.User, error)

	RemoveSavedBook(ctx context.Context, userID, bookID string) (*entities.User, error)
}
