package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNews_Format(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	news := NewNewsAt("Hello", "Paris", now)

	assert.Equal(t, "News -------------------------\nHello\nParis, 2024-05-10 14:30\n", news.Format())
}

func TestNews_Format_Immutable(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	news := NewNewsAt("Hello", "Paris", now)

	assert.Equal(t, news.Format(), news.Format())
}

func TestPrivateAd_DaysLeft_FutureDate(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	ad, err := NewPrivateAdAt("Sale", "2024-05-15", now)

	require.NoError(t, err)
	assert.Equal(t, 4, ad.DaysLeft)
}

func TestPrivateAd_DaysLeft_PastDate(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	ad, err := NewPrivateAdAt("Sale", "2024-05-09", now)

	require.NoError(t, err)
	assert.Equal(t, -2, ad.DaysLeft)
}

func TestPrivateAd_DaysLeft_SameMidnight(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	ad, err := NewPrivateAdAt("Sale", "2024-05-10", now)

	require.NoError(t, err)
	assert.Equal(t, 0, ad.DaysLeft)
}

func TestPrivateAd_DaysLeft_LocalZone(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*3600)
	now := time.Date(2024, 5, 11, 1, 0, 0, 0, zone)
	ad, err := NewPrivateAdAt("Sale", "2024-05-11", now)

	require.NoError(t, err)
	assert.Equal(t, -1, ad.DaysLeft)
}

func TestPrivateAd_DaysLeft_LocalZoneFuture(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2024, 5, 10, 23, 0, 0, 0, zone)
	ad, err := NewPrivateAdAt("Sale", "2024-05-12", now)

	require.NoError(t, err)
	assert.Equal(t, 1, ad.DaysLeft)
}

func TestPrivateAd_InvalidDate(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	ad, err := NewPrivateAdAt("Sale", "10.05.2024", now)

	assert.Nil(t, ad)
	require.Error(t, err)
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Contains(t, err.Error(), "10.05.2024")
}

func TestPrivateAd_Format(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	ad, err := NewPrivateAdAt("Garage sale", "2024-06-01", now)

	require.NoError(t, err)
	assert.Equal(t, "Private Ad ------------------\nGarage sale\nActual until: 2024-06-01, 21 days left\n", ad.Format())
}

func TestWeatherReport_Format(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	report := NewWeatherReportAt("Oslo", "21.5", now)

	assert.Equal(t, "Weather Report --------------\nCity: Oslo\nTemperature: 21.5°C\nReported at: 2024-05-10 14:30\n", report.Format())
}

func TestWeatherReport_TemperatureKeptAsText(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	report := NewWeatherReportAt("Oslo", "around twenty", now)

	assert.Contains(t, report.Format(), "Temperature: around twenty°C")
}
