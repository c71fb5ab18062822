package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/indunissanka/qbread/services"
)

type ProductController struct {
	productService *services.ProductService
}

func NewProductController(productService *services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// GetProducts returns the full catalog.
func (pc *ProductController) GetProducts(c *gin.Context) {
	products, serviceErr := pc.productService.List(c.Request.Context())
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"message": serviceErr.Message})
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct handles admin product creation.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product data"})
		return
	}

	product, serviceErr := pc.productService.Create(c.Request.Context(), &req)
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"message": serviceErr.Message})
		return
	}
	c.JSON(http.StatusCreated, product)
}
