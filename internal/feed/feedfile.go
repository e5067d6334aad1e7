package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"newsfeed/internal/config"
	"newsfeed/internal/domain"
	"os"
)

// FileStore хранит ленту в текстовом файле. Записи только добавляются
// в конец; обновления и удаления существующих блоков не поддерживаются.
// Файловый дескриптор открывается и закрывается на каждую операцию.
type FileStore struct {
	path string
	log  *slog.Logger
}

func NewFileStore(appCfg config.AppConfig, log *slog.Logger) *FileStore {
	log.Info("Initializing file feed store", slog.String("path", appCfg.FeedFile))
	return &FileStore{
		path: appCfg.FeedFile,
		log:  log,
	}
}

// Path возвращает путь к файлу ленты.
func (s *FileStore) Path() string { return s.path }

// Add дописывает отформатированный блок записи и пустую строку-разделитель
// в конец файла ленты, создавая файл при отсутствии.
func (s *FileStore) Add(ctx context.Context, record domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	const op = "feed.FileStore.Add"
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		s.log.Error(
			"Failed to open feed file",
			slog.String("path", s.path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s: failed to open feed file %s: %w", op, s.path, err)
	}
	if _, err := f.WriteString(record.Format() + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("%s: failed to append record: %w", op, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: failed to close feed file: %w", op, err)
	}
	return nil
}

// Content возвращает полное текущее содержимое ленты.
// Отсутствующий файл считается пустой лентой.
func (s *FileStore) Content(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("feed.FileStore.Content: failed to read feed file %s: %w", s.path, err)
	}
	return string(data), nil
}
