package importer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"newsfeed/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *BlockParser {
	return NewBlockParser(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBlockParser_Parse_Success(t *testing.T) {
	parser := newTestParser()
	input := "News\nHello\nParis\n\nPrivateAd\nSale\n2099-01-02\n\nWeatherReport\nOslo\n-4\n"

	records, skipped, err := parser.Parse(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, records, 3)

	news, ok := records[0].(*domain.News)
	require.True(t, ok)
	assert.Equal(t, "Hello", news.Text)
	assert.Equal(t, "Paris", news.City)

	ad, ok := records[1].(*domain.PrivateAd)
	require.True(t, ok)
	assert.Equal(t, "Sale", ad.Text)
	assert.Equal(t, "2099-01-02", ad.Expiration.Format(domain.DateLayout))

	report, ok := records[2].(*domain.WeatherReport)
	require.True(t, ok)
	assert.Equal(t, "Oslo", report.City)
	assert.Equal(t, "-4", report.Temperature)
}

func TestBlockParser_Parse_UnknownTagSkipped(t *testing.T) {
	parser := newTestParser()
	input := "News\nHello\nParis\n\nPrivateAd\nSale\n2099-01-02\n\nBogus\nfield one\nfield two\n"

	records, skipped, err := parser.Parse(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, records, 2)
	assert.IsType(t, &domain.News{}, records[0])
	assert.IsType(t, &domain.PrivateAd{}, records[1])
}

func TestBlockParser_Parse_ShortBlockSkipped(t *testing.T) {
	parser := newTestParser()
	input := "News\nHello\n\nWeatherReport\nOslo\n-4\n"

	records, skipped, err := parser.Parse(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, records, 1)
	assert.IsType(t, &domain.WeatherReport{}, records[0])
}

func TestBlockParser_Parse_BadDateSkipped(t *testing.T) {
	parser := newTestParser()
	input := "PrivateAd\nSale\nnot-a-date\n\nNews\nHello\nParis\n"

	records, skipped, err := parser.Parse(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, records, 1)
	assert.IsType(t, &domain.News{}, records[0])
}

func TestBlockParser_Parse_ExtraBlankLines(t *testing.T) {
	parser := newTestParser()
	input := "\n\nNews\nHello\nParis\n\n\n\nWeatherReport\nOslo\n-4\n\n"

	records, skipped, err := parser.Parse(context.Background(), strings.NewReader(input))

	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Len(t, records, 2)
}

func TestBlockParser_Parse_EmptyInput(t *testing.T) {
	parser := newTestParser()

	records, skipped, err := parser.Parse(context.Background(), strings.NewReader(""))

	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Empty(t, records)
}

func TestBlockParser_Parse_ContextCancelled(t *testing.T) {
	parser := newTestParser()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records, _, err := parser.Parse(ctx, strings.NewReader("News\nHello\nParis\n"))

	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, records)
}
