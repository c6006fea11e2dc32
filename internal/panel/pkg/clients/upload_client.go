package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"commerceadmin_api/config"
	"commerceadmin_api/internal/panel/business/models/dto/response"
)

// UploadClient — отправка multipart/form-data: бинарная часть с файлом
// плюс опциональная JSON-часть с метаданными.
type UploadClient struct {
	BaseClient
}

func NewUploadClient(cfg config.PanelAPIConfig, writer io.Writer) *UploadClient {
	return &UploadClient{
		BaseClient: *NewBaseClient(cfg, writer, "[ UploadClient ]"),
	}
}

// Upload собирает двухчастную форму и декодирует ответ в out.
func (c *UploadClient) Upload(ctx context.Context, endpoint, filename string, image io.Reader, meta interface{}, out interface{}) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return fmt.Errorf("failed to copy image into form: %w", err)
	}

	if meta != nil {
		metaBytes, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("failed to marshal upload metadata: %w", err)
		}
		if err := form.WriteField("data", string(metaBytes)); err != nil {
			return fmt.Errorf("failed to write metadata part: %w", err)
		}
	}

	if err := form.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	headers := map[string]string{
		// браузерный аналог оставляет Content-Type форме; здесь его
		// задаёт multipart.Writer вместе с boundary
		"Content-Type": form.FormDataContentType(),
		"Accept":       "application/json",
	}
	return c.do(ctx, http.MethodPost, endpoint, &buf, headers, out)
}

// UploadImage — загрузка одиночного изображения без метаданных.
func (c *UploadClient) UploadImage(ctx context.Context, endpoint, filename string, image io.Reader) (*response.UploadResult, error) {
	var result response.UploadResult
	if err := c.Upload(ctx, endpoint, filename, image, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
