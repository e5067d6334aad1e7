package domain

import (
	"fmt"
	"math"
	"time"
)

const (
	// TimestampLayout - формат отметки времени в блоках записей.
	TimestampLayout = "2006-01-02 15:04"
	// DateLayout - формат даты окончания действия объявления.
	DateLayout = "2006-01-02"
)

// Record представляет запись новостной ленты.
// Каждый вариант форматирует себя в многострочный текстовый блок.
type Record interface {
	Format() string
}

// News представляет новость с текстом и городом.
type News struct {
	Text    string
	City    string
	Created time.Time
}

// NewNews создает новость с текущим моментом времени.
func NewNews(text, city string) *News {
	return NewNewsAt(text, city, time.Now())
}

// NewNewsAt создает новость с заданным моментом создания.
func NewNewsAt(text, city string, now time.Time) *News {
	return &News{Text: text, City: city, Created: now}
}

func (n *News) Format() string {
	return fmt.Sprintf("News -------------------------\n%s\n%s, %s\n",
		n.Text, n.City, n.Created.Format(TimestampLayout))
}

// PrivateAd представляет частное объявление со сроком действия.
// DaysLeft фиксируется в момент создания и может быть отрицательным,
// если срок уже истек.
type PrivateAd struct {
	Text       string
	Expiration time.Time
	DaysLeft   int
}

// NewPrivateAd создает объявление, отсчитывая срок от текущего момента.
func NewPrivateAd(text, expiration string) (*PrivateAd, error) {
	return NewPrivateAdAt(text, expiration, time.Now())
}

// NewPrivateAdAt создает объявление с заданным моментом создания.
// Дата окончания трактуется как полночь в зоне момента создания,
// поэтому срок считается по локальному календарю.
// Возвращает ParseError, если дата не соответствует формату YYYY-MM-DD.
func NewPrivateAdAt(text, expiration string, now time.Time) (*PrivateAd, error) {
	exp, err := time.ParseInLocation(DateLayout, expiration, now.Location())
	if err != nil {
		return nil, &ParseError{Field: "expiration date", Value: expiration, Err: err}
	}
	days := int(math.Floor(exp.Sub(now).Hours() / 24))
	return &PrivateAd{Text: text, Expiration: exp, DaysLeft: days}, nil
}

func (a *PrivateAd) Format() string {
	return fmt.Sprintf("Private Ad ------------------\n%s\nActual until: %s, %d days left\n",
		a.Text, a.Expiration.Format(DateLayout), a.DaysLeft)
}

// WeatherReport представляет сводку погоды для города.
// Температура хранится как введенный текст без числовой валидации.
type WeatherReport struct {
	City        string
	Temperature string
	Reported    time.Time
}

// NewWeatherReport создает сводку погоды с текущим моментом времени.
func NewWeatherReport(city, temperature string) *WeatherReport {
	return NewWeatherReportAt(city, temperature, time.Now())
}

// NewWeatherReportAt создает сводку погоды с заданным моментом создания.
func NewWeatherReportAt(city, temperature string, now time.Time) *WeatherReport {
	return &WeatherReport{City: city, Temperature: temperature, Reported: now}
}

func (w *WeatherReport) Format() string {
	return fmt.Sprintf("Weather Report --------------\nCity: %s\nTemperature: %s°C\nReported at: %s\n",
		w.City, w.Temperature, w.Reported.Format(TimestampLayout))
}
