package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"commerceadmin_api/config"
	"commerceadmin_api/internal/panel/business/models"
	"commerceadmin_api/internal/panel/business/models/dto/response"
	"commerceadmin_api/metrics"
	"commerceadmin_api/pkg/logger"
)

const defaultTimeout = 30 * time.Second

// BaseClient — единая точка выхода в сеть: собирает URL из базового
// адреса и эндпоинта, навешивает заголовки, лимитирует частоту запросов
// и нормализует ошибки ответа.
type BaseClient struct {
	ApiURL  string
	log     logger.Logger
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
	headers map[string]string
}

func NewBaseClient(cfg config.PanelAPIConfig, writer io.Writer, logPrefix string) *BaseClient {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	rps := rate.Limit(cfg.RateLimitRPS)
	if rps <= 0 {
		rps = rate.Inf
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}
	return &BaseClient{
		ApiURL:  strings.TrimRight(cfg.BaseURL, "/"),
		log:     logger.NewLogger(writer, logPrefix),
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rps, burst),
		timeout: timeout,
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// WithLogger заменяет логгер, оставляя остальную конфигурацию.
func (c *BaseClient) WithLogger(log logger.Logger) *BaseClient {
	c.log = log
	return c
}

// Request выполняет один сетевой запрос и декодирует JSON-ответ в out.
// 204 No Content оставляет out нетронутым. Любая ошибка логируется
// один раз и возвращается вызывающему.
func (c *BaseClient) Request(ctx context.Context, method, endpoint string, requestBody interface{}, out interface{}) error {
	var bodyReader io.Reader
	if requestBody != nil {
		bodyBytes, err := json.Marshal(requestBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}
	return c.do(ctx, method, endpoint, bodyReader, c.headers, out)
}

// RequestValues — как Request, но с query-параметрами.
func (c *BaseClient) RequestValues(ctx context.Context, method, endpoint string, values url.Values, out interface{}) error {
	if encoded := values.Encode(); encoded != "" {
		endpoint = endpoint + "?" + encoded
	}
	return c.Request(ctx, method, endpoint, nil, out)
}

func (c *BaseClient) do(ctx context.Context, method, endpoint string, body io.Reader, headers map[string]string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.ApiURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range headers {
		if value != "" {
			req.Header.Set(key, value)
		}
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordRequest(method, endpoint, 0, time.Since(started))
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			timeoutErr := &models.TimeoutError{Endpoint: endpoint}
			c.log.Log("API request failed: %v", timeoutErr)
			return timeoutErr
		}
		select {
		case <-ctx.Done():
			c.log.Log("API request cancelled for %s: %v", endpoint, ctx.Err())
			return fmt.Errorf("request was cancelled: %w", ctx.Err())
		default:
			c.log.Log("API request failed for %s: %v", endpoint, err)
			return fmt.Errorf("failed to execute request: %w", err)
		}
	}
	defer resp.Body.Close()

	metrics.RecordRequest(method, endpoint, resp.StatusCode, time.Since(started))

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		requestErr := c.errorFromResponse(resp)
		c.log.Log("API request failed for %s: %v", endpoint, requestErr)
		return requestErr
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		// не-JSON ответ отдаём как сырые байты, если вызывающий их ждёт
		if raw, ok := out.(*[]byte); ok {
			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("failed to read response body: %w", err)
			}
			*raw = data
			return nil
		}
		return fmt.Errorf("unexpected content type %q for %s", contentType, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Log("API response decode failed for %s: %v", endpoint, err)
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// errorFromResponse достаёт message/error из тела; если тело не
// парсится — возвращает generic-сообщение по коду статуса.
func (c *BaseClient) errorFromResponse(resp *http.Response) *models.RequestError {
	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		return models.NewHTTPStatusError(resp.StatusCode)
	}

	var envelope response.ErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Text() == "" {
		return models.NewHTTPStatusError(resp.StatusCode)
	}
	return &models.RequestError{Status: resp.StatusCode, Message: envelope.Text()}
}
