package services

import (
	"io"
	"strconv"

	"commerceadmin_api/config"
	"commerceadmin_api/config/values"
	"commerceadmin_api/internal/panel/business/models"
	"commerceadmin_api/internal/panel/business/services/validate"
)

type ProductService struct {
	baseService[models.Product]
}

func NewProductService(cfg config.PanelAPIConfig, limits values.PanelLimits, writer io.Writer) *ProductService {
	return &ProductService{
		baseService: newBaseService(cfg, writer, "[ ProductService ]", resourceSpec[models.Product]{
			label:      "product",
			endpoint:   "/products",
			schema:     productSchema(),
			fetchLimit: limits.SearchFetchLimit,
			searchFields: func(product models.Product) []string {
				return []string{product.Name, product.Description, strconv.Itoa(product.ID)}
			},
		}),
	}
}

func productSchema() *validate.Schema[models.Product] {
	return validate.NewSchema(
		validate.Field[models.Product]{
			Label:    "product name",
			Required: true,
			MaxLen:   100,
			Value:    func(product models.Product) string { return product.Name },
		},
		validate.Field[models.Product]{
			Label:    "product description",
			Required: true,
			MaxLen:   500,
			Value:    func(product models.Product) string { return product.Description },
		},
		validate.Field[models.Product]{
			Label: "product price",
			Check: func(product models.Product) string {
				if product.Price < 0 {
					return "product price must not be negative"
				}
				return ""
			},
		},
	)
}
