package services

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/indunissanka/qbread/logger"
	"github.com/indunissanka/qbread/models"
	"github.com/indunissanka/qbread/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// validate checks create-request payloads. Structural validation is the sole
// input-rejection mechanism; business rules are not checked here.
var validate = validator.New()

// CreateProductRequest mirrors the product columns required on insert.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price" validate:"required,numeric"`
	Image       string `json:"image" validate:"required"`
	Category    string `json:"category" validate:"required"`
}

type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, *ServiceError) {
	products, err := s.products.List(ctx)
	if err != nil {
		logger.Log.Error("Failed to list products", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch products"}
	}
	return products, nil
}

func (s *ProductService) Create(ctx context.Context, req *CreateProductRequest) (*models.Product, *ServiceError) {
	if err := validate.Struct(req); err != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid product data"}
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid product data"}
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       models.NewMoney(price),
		Image:       req.Image,
		Category:    req.Category,
	}

	if err := s.products.Create(ctx, product); err != nil {
		logger.Log.Error("Failed to create product", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create product"}
	}
	return product, nil
}
