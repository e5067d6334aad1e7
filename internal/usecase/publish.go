package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"newsfeed/internal/domain"
	"time"
)

// PublishUseCase реализует единственный путь записи в ленту.
// Координирует добавление блока, синхронный пересчет статистики
// и необязательное архивирование записи.
type PublishUseCase struct {
	store   RecordStore
	stats   StatsRefresher
	archive RecordArchive
	log     *slog.Logger
}

// NewPublishUseCase создает новый экземпляр UseCase публикации записей.
// archive может быть nil, тогда этап архивирования пропускается.
func NewPublishUseCase(
	store RecordStore,
	stats StatsRefresher,
	archive RecordArchive,
	log *slog.Logger,
) *PublishUseCase {
	return &PublishUseCase{
		store:   store,
		stats:   stats,
		archive: archive,
		log:     log,
	}
}

// Publish добавляет запись в ленту и обновляет производные артефакты.
// Статистика пересчитывается по всему накопленному тексту после каждого
// добавления. Отката нет: запись, попавшая в ленту до сбоя на более
// позднем этапе, остается в ней.
func (uc *PublishUseCase) Publish(ctx context.Context, record domain.Record) error {
	start := time.Now()
	log := uc.log.With(slog.String("component", "publisher"))

	if err := uc.store.Add(ctx, record); err != nil {
		log.Error("Record append failed",
			slog.String("stage", "append"),
			slog.Any("error", err),
		)
		return fmt.Errorf("append failed: %w", err)
	}

	log.Debug("Record appended", slog.String("stage", "append"))

	content, err := uc.store.Content(ctx)
	if err != nil {
		log.Error("Feed read-back failed",
			slog.String("stage", "stats"),
			slog.Any("error", err),
		)
		return fmt.Errorf("stats refresh failed: %w", err)
	}
	if err := uc.stats.Refresh(ctx, content); err != nil {
		log.Error("Statistics refresh failed",
			slog.String("stage", "stats"),
			slog.Any("error", err),
		)
		return fmt.Errorf("stats refresh failed: %w", err)
	}

	if uc.archive != nil {
		if err := uc.archive.SaveRecord(ctx, record); err != nil {
			log.Error("Record archiving failed",
				slog.String("stage", "archive"),
				slog.Any("error", err),
			)
			return fmt.Errorf("archive failed: %w", err)
		}
	}

	log.Info("Record published",
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}
