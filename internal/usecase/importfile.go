package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// ImportUseCase реализует пакетный импорт записей из текстового файла.
// Каждая успешно разобранная запись публикуется по очереди, после чего
// исходный файл удаляется.
type ImportUseCase struct {
	parser     RecordParser
	publisher  RecordPublisher
	log        *slog.Logger
	removeFile func(string) error
}

// NewImportUseCase создает новый экземпляр UseCase импорта файлов.
func NewImportUseCase(parser RecordParser, publisher RecordPublisher, log *slog.Logger) *ImportUseCase {
	return &ImportUseCase{
		parser:     parser,
		publisher:  publisher,
		log:        log,
		removeFile: os.Remove,
	}
}

// ImportFile выполняет полный цикл импорта: чтение, разбор, публикация
// каждой записи в порядке следования блоков и удаление источника.
// Непригодные блоки пропущены еще на этапе разбора. Возвращает число
// опубликованных и пропущенных записей. Сбой публикации или удаления
// останавливает операцию, но уже опубликованные записи остаются в ленте.
func (uc *ImportUseCase) ImportFile(ctx context.Context, path string) (int, int, error) {
	start := time.Now()
	log := uc.log.With(
		slog.String("component", "importer"),
		slog.String("path", path),
	)

	log.Info("Import started")

	f, err := os.Open(path)
	if err != nil {
		log.Error("Import file open failed",
			slog.String("stage", "open"),
			slog.Any("error", err),
		)
		return 0, 0, fmt.Errorf("open failed for %s: %w", path, err)
	}
	records, skipped, err := uc.parser.Parse(ctx, f)
	f.Close()
	if err != nil {
		log.Error("Import file parsing failed",
			slog.String("stage", "parse"),
			slog.Any("error", err),
		)
		return 0, skipped, fmt.Errorf("parse failed for %s: %w", path, err)
	}

	log.Debug("Import file parsed",
		slog.String("stage", "parse"),
		slog.Int("records_parsed", len(records)),
		slog.Int("blocks_skipped", skipped),
	)

	published := 0
	for _, record := range records {
		if err := uc.publisher.Publish(ctx, record); err != nil {
			log.Error("Record publishing failed",
				slog.String("stage", "publish"),
				slog.Int("published", published),
				slog.Any("error", err),
			)
			return published, skipped, fmt.Errorf("publish failed after %d records: %w", published, err)
		}
		published++
	}

	if err := uc.removeFile(path); err != nil {
		log.Error("Import file deletion failed",
			slog.String("stage", "cleanup"),
			slog.Any("error", err),
		)
		return published, skipped, fmt.Errorf("failed to delete %s after import: %w", path, err)
	}

	log.Info("Import completed successfully",
		slog.Int("records_published", published),
		slog.Int("blocks_skipped", skipped),
		slog.Duration("duration", time.Since(start)),
	)
	return published, skipped, nil
}
