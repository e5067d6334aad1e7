package importer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"newsfeed/internal/domain"
	"strings"
)

// Теги типов записей, ожидаемые в первой строке блока.
const (
	tagNews          = "News"
	tagPrivateAd     = "PrivateAd"
	tagWeatherReport = "WeatherReport"
)

type BlockParser struct {
	log *slog.Logger
}

func NewBlockParser(log *slog.Logger) *BlockParser {
	return &BlockParser{
		log: log,
	}
}

// Parse реализует метод интерфейса RecordParser.
// Разбирает содержимое как последовательность блоков, разделенных пустыми
// строками. Первая строка блока - тег типа, следующие две - поля варианта.
// Непригодные блоки пропускаются с предупреждением, разбор продолжается.
// Возвращает записи в порядке следования блоков и число пропущенных блоков.
func (p *BlockParser) Parse(ctx context.Context, reader io.Reader) ([]domain.Record, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	blocks, err := splitBlocks(reader)
	if err != nil {
		p.log.Error(
			"Error reading import data",
			slog.Any("error", err),
		)
		return nil, 0, fmt.Errorf("failed to read import data: %w", err)
	}
	records := make([]domain.Record, 0, len(blocks))
	skipped := 0
	for i, block := range blocks {
		record, err := parseBlock(block)
		if err != nil {
			skipped++
			p.log.Warn(
				"could not parse block, skipping",
				slog.Int("block", i+1),
				slog.String("first_line", block[0]),
				slog.Any("error", err),
			)
			continue
		}
		records = append(records, record)
	}
	return records, skipped, nil
}

// splitBlocks разбивает содержимое на блоки по пустым строкам.
// Строки обрезаются от пробельных символов; пустые строки внутри
// блока не сохраняются, поэтому каждый блок содержит только непустые строки.
func splitBlocks(reader io.Reader) ([][]string, error) {
	var blocks [][]string
	var current []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks, nil
}

// parseBlock преобразует один блок в запись по его тегу.
func parseBlock(lines []string) (domain.Record, error) {
	if len(lines) < 3 {
		return nil, &domain.MalformedBlockError{
			Reason: fmt.Sprintf("expected a tag and 2 fields, got %d lines", len(lines)),
		}
	}
	tag, fields := lines[0], lines[1:]
	switch tag {
	case tagNews:
		return domain.NewNews(fields[0], fields[1]), nil
	case tagPrivateAd:
		return domain.NewPrivateAd(fields[0], fields[1])
	case tagWeatherReport:
		return domain.NewWeatherReport(fields[0], fields[1]), nil
	default:
		return nil, &domain.MalformedBlockError{
			Reason: fmt.Sprintf("unknown record tag %q", tag),
		}
	}
}
