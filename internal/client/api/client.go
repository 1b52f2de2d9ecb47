package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/bloodlink/internal/client/storage"
	"github.com/iudanet/bloodlink/pkg/api"
)

// RequestTimeout ограничивает каждый вызов, единый для всех эндпоинтов.
// 10 секунд выбраны с запасом на cold start хостинга сервера.
const RequestTimeout = 10 * time.Second

// ExpiryHandler вызывается синхронно при получении 401 на авторизованный
// запрос, до возврата ошибки вызывающему. Сюда подключается session manager,
// чтобы мертвая сессия не переживала первый же отказ сервера.
type ExpiryHandler func(ctx context.Context)

// Client представляет HTTP клиент для взаимодействия с сервером BloodLink.
// Перед каждым запросом читает токен из credential store и, если он есть,
// прикладывает его как bearer credential (outbound hook). Ошибка чтения
// хранилища логируется и трактуется как "токена нет" - запрос уходит без
// заголовка, но не блокируется.
type Client struct {
	httpClient *http.Client
	tokens     storage.TokenStorage
	onExpired  ExpiryHandler
	logger     *slog.Logger
	baseURL    string
}

// NewClient создает новый API клиент.
// tokens может быть nil - тогда запросы всегда уходят без авторизации.
func NewClient(baseURL string, tokens storage.TokenStorage, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: RequestTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetExpiryHandler подключает обработчик истечения сессии (session manager)
func (c *Client) SetExpiryHandler(handler ExpiryHandler) {
	c.onExpired = handler
}

// Login обменивает учетные данные на токен сессии
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	err := c.doRequest(ctx, "POST", "/auth/login", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register регистрирует нового донора
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, "POST", "/auth/register", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// GetProfile получает профиль донора
func (c *Client) GetProfile(ctx context.Context) (*api.DonorProfile, error) {
	var resp api.DonorProfile
	err := c.doRequest(ctx, "GET", "/donor/profile", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile обновляет изменяемые поля профиля
func (c *Client) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) error {
	err := c.doRequest(ctx, "PUT", "/donor/profile", req, nil)
	if err != nil {
		return fmt.Errorf("profile update failed: %w", err)
	}
	return nil
}

// GetEmergencyRequests получает активные экстренные запросы.
// Сервер может вернуть надмножество: фильтрация по группе крови и статусу -
// забота клиента (feed synchronizer).
func (c *Client) GetEmergencyRequests(ctx context.Context) ([]api.EmergencyRequest, error) {
	var resp []api.EmergencyRequest
	err := c.doRequest(ctx, "GET", "/donor/emergency-requests", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("emergency requests fetch failed: %w", err)
	}
	return resp, nil
}

// Respond отправляет отклик донора на экстренный запрос
func (c *Client) Respond(ctx context.Context, req api.RespondRequest) error {
	err := c.doRequest(ctx, "POST", "/donor/respond", req, nil)
	if err != nil {
		return fmt.Errorf("respond request failed: %w", err)
	}
	return nil
}

// GetHospitals получает справочник партнерских госпиталей
func (c *Client) GetHospitals(ctx context.Context) ([]api.Hospital, error) {
	var resp []api.Hospital
	err := c.doRequest(ctx, "GET", "/donor/hospitals", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("hospitals fetch failed: %w", err)
	}
	return resp, nil
}

// GetHistory получает историю завершенных донаций
func (c *Client) GetHistory(ctx context.Context) ([]api.Donation, error) {
	var resp []api.Donation
	err := c.doRequest(ctx, "GET", "/donor/history", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("history fetch failed: %w", err)
	}
	return resp, nil
}

// doRequest выполняет HTTP запрос с обоими хуками жизненного цикла
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.New().String())

	// Outbound hook: читаем токен и прикладываем bearer credential.
	// Ошибка хранилища - fail open: логируем и шлем запрос без заголовка.
	hadToken := false
	if c.tokens != nil {
		token, err := c.tokens.GetToken(ctx)
		switch {
		case err == nil && token != "":
			req.Header.Set("Authorization", "Bearer "+token)
			hadToken = true
		case err != nil && !errors.Is(err, storage.ErrTokenNotFound):
			c.logger.Warn("failed to read token from credential store", "error", err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Таймаут или недоступный сервер - транзиентная ошибка
		return &NetworkError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Inbound hook: 401 на запрос с приложенным токеном означает, что
	// credential отозван или истек. Уведомляем session manager синхронно,
	// до возврата ошибки - иначе мертвая сессия будет повторять отказы.
	if resp.StatusCode == http.StatusUnauthorized && hadToken {
		c.logger.Warn("server rejected bearer credential", "path", path)
		if c.onExpired != nil {
			c.onExpired(ctx)
		}
		return fmt.Errorf("authorization rejected: %w", ErrSessionExpired)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return &ServerError{Status: resp.StatusCode, Message: errResp.Message}
		}
		return &ServerError{Status: resp.StatusCode, Message: string(respBody)}
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
