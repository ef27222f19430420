package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/sirupsen/logrus"
)

// NominatimGeocoder - обратное геокодирование через OpenStreetMap Nominatim.
// Отказ геокодера не должен блокировать создание инцидента: вызывающая
// сторона подставляет запасной адрес при любой ошибке.
type NominatimGeocoder struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewNominatimGeocoder создает геокодер с таймаутом из конфигурации
func NewNominatimGeocoder(cfg *config.Config, logger *logrus.Logger) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL: strings.TrimRight(cfg.GeocoderBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.GeocoderTimeout,
		},
		logger: logger,
	}
}

// nominatimResponse - интересующая нас часть ответа Nominatim
type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		Neighbourhood string `json:"neighbourhood"`
		Suburb        string `json:"suburb"`
		Village       string `json:"village"`
		Hamlet        string `json:"hamlet"`
		Road          string `json:"road"`
		CityDistrict  string `json:"city_district"`
		County        string `json:"county"`
		City          string `json:"city"`
		Town          string `json:"town"`
		StateDistrict string `json:"state_district"`
	} `json:"address"`
}

// Reverse переводит координаты в короткий адрес вида "Район, Округ, Город"
func (g *NominatimGeocoder) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	endpoint := fmt.Sprintf("%s/reverse?lat=%s&lon=%s&format=json&zoom=16",
		g.baseURL,
		url.QueryEscape(fmt.Sprintf("%f", lat)),
		url.QueryEscape(fmt.Sprintf("%f", lng)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create geocoder request: %w", err)
	}
	req.Header.Set("Accept-Language", "en")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var data nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode geocoder response: %w", err)
	}

	// Собираем адрес от наиболее точной части к наименее точной
	a := data.Address
	parts := make([]string, 0, 3)
	if p := firstNonEmpty(a.Neighbourhood, a.Suburb, a.Village, a.Hamlet, a.Road); p != "" {
		parts = append(parts, p)
	}
	if p := firstNonEmpty(a.CityDistrict, a.County); p != "" {
		parts = append(parts, p)
	}
	if p := firstNonEmpty(a.City, a.Town, a.StateDistrict); p != "" {
		parts = append(parts, p)
	}

	if len(parts) > 0 {
		return strings.Join(parts, ", "), nil
	}
	if data.DisplayName != "" {
		return data.DisplayName, nil
	}
	return "", fmt.Errorf("geocoder response contained no usable address")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
