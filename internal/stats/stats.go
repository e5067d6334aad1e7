package stats

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"newsfeed/internal/config"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Engine пересчитывает частотные таблицы слов и букв по полному тексту
// ленты и перезаписывает оба CSV-артефакта целиком при каждом обновлении.
type Engine struct {
	wordFile   string
	letterFile string
	log        *slog.Logger
}

func NewEngine(appCfg config.AppConfig, log *slog.Logger) *Engine {
	return &Engine{
		wordFile:   appCfg.WordCountFile,
		letterFile: appCfg.LetterCountFile,
		log:        log,
	}
}

// Refresh пересчитывает обе таблицы с нуля по переданному тексту.
// Пересчет детерминирован: одинаковый текст дает байт-в-байт
// одинаковые артефакты.
func (e *Engine) Refresh(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	const op = "stats.Engine.Refresh"
	if err := e.writeWordCounts(text); err != nil {
		e.log.Error("Word count refresh failed", slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := e.writeLetterCounts(text); err != nil {
		e.log.Error("Letter count refresh failed", slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}
	e.log.Debug("Statistics refreshed",
		slog.String("component", "stats"),
		slog.Int("text_size", len(text)),
	)
	return nil
}

func (e *Engine) writeWordCounts(text string) error {
	counts := countWords(text)
	words := make([]string, 0, len(counts))
	for word := range counts {
		words = append(words, word)
	}
	sort.Strings(words)
	rows := make([][]string, 0, len(words)+1)
	rows = append(rows, []string{"word", "count"})
	for _, word := range words {
		rows = append(rows, []string{word, strconv.Itoa(counts[word])})
	}
	return writeCSV(e.wordFile, rows)
}

func (e *Engine) writeLetterCounts(text string) error {
	counts, total := countLetters(text)
	letters := make([]rune, 0, len(counts))
	for letter := range counts {
		letters = append(letters, letter)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	rows := make([][]string, 0, len(letters)+1)
	rows = append(rows, []string{"letter", "count_all", "count_uppercase", "percentage"})
	for _, letter := range letters {
		c := counts[letter]
		percentage := 0.0
		if total > 0 {
			percentage = 100 * float64(c.total) / float64(total)
		}
		rows = append(rows, []string{
			string(letter),
			strconv.Itoa(c.total),
			strconv.Itoa(c.upper),
			strconv.FormatFloat(percentage, 'f', 2, 64),
		})
	}
	return writeCSV(e.letterFile, rows)
}

// writeCSV полностью заменяет содержимое артефакта новыми строками.
func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// countWords делит текст по пробельным символам, обрезает знаки препинания
// по краям токена и считает слова в нижнем регистре. Токены, ставшие
// пустыми после обрезки, отбрасываются.
func countWords(text string) map[string]int {
	counts := make(map[string]int)
	for _, token := range strings.Fields(text) {
		word := strings.ToLower(strings.TrimFunc(token, unicode.IsPunct))
		if word == "" {
			continue
		}
		counts[word]++
	}
	return counts
}

type letterCount struct {
	total int
	upper int
}

// countLetters считает каждую букву текста без учета регистра и отдельно
// в верхнем регистре. Возвращает также общее число букв в тексте.
func countLetters(text string) (map[rune]letterCount, int) {
	counts := make(map[rune]letterCount)
	total := 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		total++
		lower := unicode.ToLower(r)
		c := counts[lower]
		c.total++
		if unicode.IsUpper(r) {
			c.upper++
		}
		counts[lower] = c
	}
	return counts, total
}
