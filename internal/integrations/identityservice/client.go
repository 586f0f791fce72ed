package identityservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с IdentityService.
// Сервис бронирования не хранит пользователей и роли - проверка права
// согласовывать запросы делегируется этому коллаборатору.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента IdentityService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetReviewer получает данные пользователя-рецензента
func (c *Client) GetReviewer(ctx context.Context, reviewerID int64) (*Reviewer, error) {
	url := fmt.Sprintf("%s/internal/users/%d", c.baseURL, reviewerID)

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

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrReviewerNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var reviewer Reviewer
	if err := json.NewDecoder(resp.Body).Decode(&reviewer); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &reviewer, nil
}

// CanApprove проверяет, что пользователь вправе согласовывать запросы
// указанного типа (event/room/equipment). Возвращает ErrNotAuthorized,
// если права нет.
func (c *Client) CanApprove(ctx context.Context, reviewerID int64, requestType string) error {
	url := fmt.Sprintf("%s/internal/users/%d/permissions/approve?type=%s", c.baseURL, reviewerID, requestType)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrReviewerNotFound
	case http.StatusForbidden:
		return ErrNotAuthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var perm approvePermission
	if err := json.NewDecoder(resp.Body).Decode(&perm); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !perm.Allowed {
		c.log.Warn("CanApprove: user id=%d is not allowed to approve type=%s", reviewerID, requestType)
		return ErrNotAuthorized
	}

	return nil
}
