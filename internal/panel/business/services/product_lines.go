package services

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"commerceadmin_api/config"
	"commerceadmin_api/config/values"
	"commerceadmin_api/internal/panel/business/models"
	"commerceadmin_api/internal/panel/business/models/dto/request"
	"commerceadmin_api/internal/panel/business/models/dto/response"
	"commerceadmin_api/internal/panel/business/services/validate"
	"commerceadmin_api/internal/panel/pkg/clients"
)

const (
	productLinesEndpoint = "/product-lines"
	uploadImageEndpoint  = "/upload/image"
)

type ProductLineService struct {
	baseService[models.ProductLine]
	uploads       *clients.UploadClient
	maxImageBytes int64
}

func NewProductLineService(cfg config.PanelAPIConfig, limits values.PanelLimits, writer io.Writer) *ProductLineService {
	maxImageBytes := int64(limits.MaxImageBytes)
	if maxImageBytes <= 0 {
		maxImageBytes = 5 * 1024 * 1024
	}
	return &ProductLineService{
		baseService: newBaseService(cfg, writer, "[ ProductLineService ]", resourceSpec[models.ProductLine]{
			label:      "product line",
			endpoint:   productLinesEndpoint,
			schema:     productLineSchema(),
			fetchLimit: limits.SearchFetchLimit,
			searchFields: func(line models.ProductLine) []string {
				return []string{line.ProductLine, line.TextDescription}
			},
		}),
		uploads:       clients.NewUploadClient(cfg, writer),
		maxImageBytes: maxImageBytes,
	}
}

func productLineSchema() *validate.Schema[models.ProductLine] {
	return validate.NewSchema(
		validate.Field[models.ProductLine]{
			Label:    "product line name",
			Required: true,
			MaxLen:   100,
			Value:    func(line models.ProductLine) string { return line.ProductLine },
		},
		validate.Field[models.ProductLine]{
			Label:    "text description",
			Required: true,
			MaxLen:   500,
			Value:    func(line models.ProductLine) string { return line.TextDescription },
		},
		validate.Field[models.ProductLine]{
			Label:  "HTML description",
			MaxLen: 2000,
			Value:  func(line models.ProductLine) string { return line.HTMLDescription },
		},
	)
}

// CreateWithImage создаёт линейку одной двухчастной формой:
// JSON-метаданные плюс бинарное изображение.
func (s *ProductLineService) CreateWithImage(ctx context.Context, data models.ProductLine, filename string, size int64, image io.Reader) (models.ProductLine, error) {
	var created models.ProductLine
	if err := s.spec.schema.Validate(data); err != nil {
		return created, err
	}
	if err := validate.ValidateImageFile(filename, size, s.maxImageBytes); err != nil {
		return created, err
	}
	if err := s.uploads.Upload(ctx, productLinesEndpoint, filename, image, data, &created); err != nil {
		return created, fmt.Errorf("failed to create product line: %w", err)
	}
	return created, nil
}

// UploadImage грузит картинку отдельно и возвращает её адрес.
func (s *ProductLineService) UploadImage(ctx context.Context, filename string, size int64, image io.Reader) (*response.UploadResult, error) {
	if err := validate.ValidateImageFile(filename, size, s.maxImageBytes); err != nil {
		return nil, err
	}
	result, err := s.uploads.UploadImage(ctx, uploadImageEndpoint, filename, image)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	return result, nil
}

func (s *ProductLineService) BulkCreate(ctx context.Context, lines []models.ProductLine) ([]models.ProductLine, error) {
	for _, line := range lines {
		if err := s.spec.schema.Validate(line); err != nil {
			return nil, err
		}
	}

	var created []models.ProductLine
	if err := s.gateway.Request(ctx, http.MethodPost, productLinesEndpoint+"/bulk", lines, &created); err != nil {
		return nil, fmt.Errorf("failed to create multiple product lines: %w", err)
	}
	return created, nil
}

func (s *ProductLineService) BulkDelete(ctx context.Context, ids []int) error {
	err := s.gateway.Request(ctx, http.MethodDelete, productLinesEndpoint+"/bulk-delete", request.BulkDelete{IDs: ids}, nil)
	if err != nil {
		return fmt.Errorf("failed to delete multiple product lines: %w", err)
	}
	return nil
}
