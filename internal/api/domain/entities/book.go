package entities

import (
	"errors"
	"time"
)

// Ошибки домена сохраненных книг.
var (
	ErrEmptyBookID    = errors.New("book ID cannot be empty")
	ErrEmptyBookTitle = errors.New("book title cannot be empty")
)

// SavedBook представляет книгу, сохраненную пользователем.
// BookID - идентификатор книги во внешнем каталоге, уникальный
// в пределах коллекции одного пользователя.
type SavedBook struct {
	BookID      string
	Title       string
	Description string
	Image       string
	Link        string
	Authors     []string
	CreatedAt   time.Time
}

// Validate проверяет обязательные поля книги.
// Отсутствующий список авторов нормализуется в пустой массив.
func (b *SavedBook) Validate() error {
	if b == nil || b.BookID == "" {
		return ErrEmptyBookID
	}
	if b.Title == "" {
		return ErrEmptyBookTitle
	}
	if b.Authors == nil {
		b.Authors = []string{}
	}
	return nil
}
