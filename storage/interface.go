package storage

import (
	"context"
	"newsfeed/internal/domain"
)

// Storage определяет общий интерфейс архива опубликованных записей.
// Объединяет сохранение записи и закрытие соединения.
type Storage interface {
	SaveRecord(ctx context.Context, record domain.Record) error
	Close()
}
