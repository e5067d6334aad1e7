package app

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"newsfeed/internal/adapter/importer"
	"newsfeed/internal/config"
	"newsfeed/internal/domain"
	"newsfeed/internal/feed"
	"newsfeed/internal/logger"
	"newsfeed/internal/migrations"
	"newsfeed/internal/stats"
	"newsfeed/internal/usecase"
	"newsfeed/storage"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

// App представляет основное приложение News Feed Recorder.
// Связывает хранилище ленты, движок статистики, импортер и необязательный
// архив в синхронный конвейер публикации и ведет диалог с пользователем
// через текстовое меню.
type App struct {
	config    *config.Config
	logger    *slog.Logger
	publisher *usecase.PublishUseCase
	importer  *usecase.ImportUseCase
	archive   storage.Storage
}

// New создает и инициализирует новый экземпляр приложения.
// Выполняет настройку логгера, при включенном архиве - подключение к базе
// данных и применение миграций, затем собирает все зависимости.
// Возвращает ошибку в случае сбоя любой из инициализационных процедур.
func New(cfg *config.Config) (*App, error) {
	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	slog.SetDefault(appLogger)

	var archive storage.Storage
	var recordArchive usecase.RecordArchive
	if cfg.Database.Enabled {
		dbPool, err := pgxpool.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := dbPool.Ping(context.Background()); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("database ping failed: %w", err)
		}
		if err := migrations.Apply(context.Background(), appLogger, dbPool); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("migrations failed: %w", err)
		}
		pgArchive := storage.NewPostgresArchive(dbPool, appLogger)
		archive = pgArchive
		recordArchive = pgArchive
	}

	fileStore := feed.NewFileStore(cfg.App, appLogger)

	statsEngine := stats.NewEngine(cfg.App, appLogger)

	blockParser := importer.NewBlockParser(appLogger)

	publisher := usecase.NewPublishUseCase(fileStore, statsEngine, recordArchive, appLogger)

	fileImporter := usecase.NewImportUseCase(blockParser, publisher, appLogger)

	return &App{
		config:    cfg,
		logger:    appLogger,
		publisher: publisher,
		importer:  fileImporter,
		archive:   archive,
	}, nil
}

// Run запускает цикл текстового меню приложения.
// Блокируется до выбора пункта выхода или исчерпания ввода.
// Все операции выполняются синхронно и завершаются до возврата
// управления пользователю.
func (a *App) Run() error {
	a.logger.Info("Starting News Feed Recorder",
		slog.String("component", "app"),
		slog.String("feed_file", a.config.App.FeedFile),
		slog.Bool("archive_enabled", a.config.Database.Enabled),
	)
	return a.loop(bufio.NewScanner(os.Stdin))
}

// loop ведет диалог меню до выбора пункта выхода. Конец ввода
// равносилен выходу: цикл завершается, а не повторяет меню.
// Конец ввода посреди полей записи отменяет ее создание.
func (a *App) loop(in *bufio.Scanner) error {
	for {
		printMenu()
		choice, ok := prompt(in, "Enter choice (1-5): ")
		if !ok {
			fmt.Println("Exiting.")
			return a.Shutdown()
		}
		switch choice {
		case "1":
			text, okText := prompt(in, "Enter news text: ")
			city, okCity := prompt(in, "Enter city: ")
			if !okText || !okCity {
				continue
			}
			a.publish(domain.NewNews(text, city))
		case "2":
			text, okText := prompt(in, "Enter ad text: ")
			expiration, okDate := prompt(in, "Enter expiration date (YYYY-MM-DD): ")
			if !okText || !okDate {
				continue
			}
			record, err := domain.NewPrivateAd(text, expiration)
			if err != nil {
				fmt.Printf("Invalid ad: %v\n", err)
				continue
			}
			a.publish(record)
		case "3":
			city, okCity := prompt(in, "Enter city: ")
			temperature, okTemp := prompt(in, "Enter temperature (°C): ")
			if !okCity || !okTemp {
				continue
			}
			a.publish(domain.NewWeatherReport(city, temperature))
		case "4":
			path, okPath := prompt(in, fmt.Sprintf("Enter import file path [%s]: ", a.config.App.DefaultImportFile))
			if !okPath {
				continue
			}
			if path == "" {
				path = a.config.App.DefaultImportFile
			}
			imported, skipped, err := a.importer.ImportFile(context.Background(), path)
			if err != nil {
				fmt.Printf("Import failed after %d records: %v\n", imported, err)
				continue
			}
			fmt.Printf("Imported %d records (%d blocks skipped)\n", imported, skipped)
		case "5":
			fmt.Println("Exiting.")
			return a.Shutdown()
		default:
			fmt.Println("Invalid choice. Try again.")
		}
	}
}

// Shutdown закрывает ресурсы приложения.
func (a *App) Shutdown() error {
	if a.archive != nil {
		a.archive.Close()
	}
	a.logger.Info("Application stopped", slog.String("component", "app"))
	return nil
}

func (a *App) publish(record domain.Record) {
	if err := a.publisher.Publish(context.Background(), record); err != nil {
		fmt.Printf("Failed to publish record: %v\n", err)
		return
	}
	fmt.Println("Record published!")
}

func printMenu() {
	fmt.Print(`
Select record type to add:
1. News
2. Private Ad
3. Weather Report
4. Import records from file
5. Exit
`)
}

// prompt выводит подсказку и читает одну строку ввода.
// Второе значение false означает конец ввода.
func prompt(in *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !in.Scan() {
		return "", false
	}
	return in.Text(), true
}
