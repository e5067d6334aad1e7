package usecase

import (
	"context"
	"io"
	"newsfeed/internal/domain"
)

// RecordStore определяет интерфейс хранилища ленты: единственный путь
// записи и чтение полного содержимого для пересчета статистики.
type RecordStore interface {
	Add(ctx context.Context, record domain.Record) error
	Content(ctx context.Context) (string, error)
}

// StatsRefresher определяет интерфейс пересчета частотных таблиц
// по полному тексту ленты.
type StatsRefresher interface {
	Refresh(ctx context.Context, text string) error
}

// RecordArchive определяет интерфейс необязательного архива записей.
// Публикация передает nil-архив, когда архивирование отключено.
type RecordArchive interface {
	SaveRecord(ctx context.Context, record domain.Record) error
}

// RecordParser определяет интерфейс разбора файла импорта
// в последовательность записей с числом пропущенных блоков.
type RecordParser interface {
	Parse(ctx context.Context, reader io.Reader) ([]domain.Record, int, error)
}

// RecordPublisher определяет интерфейс публикации одной записи
// для компонентов, которым не нужны детали конвейера.
type RecordPublisher interface {
	Publish(ctx context.Context, record domain.Record) error
}
