package entities

import (
	"errors"
	"time"
)

// Определяем ошибки домена пользователя как константы.
var (
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrEmptyUsername     = errors.New("username cannot be empty")
	ErrPasswordTooShort  = errors.New("password must contain at least 8 characters")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this username or email already exists")
)

// User представляет основную сущность домена пользователя.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	SavedBooks   []SavedBook
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BookCount возвращает количество сохраненных книг пользователя.
func (u *User) BookCount() int {
	return len(u.SavedBooks)
}

// HasBook проверяет, сохранена ли книга с указанным идентификатором каталога.
func (u *User) HasBook(bookID string) bool {
	for _, b := range u.SavedBooks {
		if b.BookID == bookID {
			return true
		}
	}
	return false
}
