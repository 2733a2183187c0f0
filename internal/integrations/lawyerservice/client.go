package lawyerservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент каталога юристов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога юристов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetLawyer получает карточку юриста по ID
func (c *Client) GetLawyer(ctx context.Context, lawyerID int64) (*Lawyer, error) {
	url := fmt.Sprintf("%s/internal/lawyers/%d", c.baseURL, lawyerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid lawyer ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrLawyerNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var lawyer Lawyer
	if err := json.NewDecoder(resp.Body).Decode(&lawyer); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &lawyer, nil
}

// RateFor возвращает ставку юриста для указанного типа сессии
func (l *Lawyer) RateFor(sessionType string) float64 {
	if sessionType == "mentorship" {
		return l.MentorshipRate
	}
	return l.ConsultationRate
}
