package dto

import (
	"time"

	"bookvault/internal/api/domain/entities"
)

// SaveBookRequest содержит данные для сохранения книги.
type SaveBookRequest struct {
	BookID      string   `json:"book_id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Authors     []string `json:"authors"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Link        string   `json:"link"`
}

// SavedBook представляет сохраненную книгу в ответе API.
type SavedBook struct {
	BookID      string   `json:"book_id"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Link        string   `json:"link,omitempty"`
}

// User представляет профиль пользователя в ответе API.
// Хэш пароля наружу не отдается.
type User struct {
	ID         string      `json:"id"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	SavedBooks []SavedBook `json:"saved_books"`
	BookCount  int         `json:"book_count"`
	CreatedAt  time.Time   `json:"created_at"`
}

// UserResponse содержит профиль пользователя.
// User равен null, если аккаунт больше не существует.
type UserResponse struct {
	User *User `json:"user"`
}

// UserFromEntity преобразует доменную сущность в представление API.
func UserFromEntity(user *entities.User) *User {
	if user == nil {
		return nil
	}

	books := make([]SavedBook, 0, len(user.SavedBooks))
	for _, b := range user.SavedBooks {
		books = append(books, SavedBook{
			BookID:      b.BookID,
			Title:       b.Title,
			Authors:     b.Authors,
			Description: b.Description,
			Image:       b.Image,
			Link:        b.Link,
		})
	}

	return &User{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		SavedBooks: books,
		BookCount:  user.BookCount(),
		CreatedAt:  user.CreatedAt,
	}
}
