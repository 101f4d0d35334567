// Package catalog implements product CRUD and the low-stock report.
// Stock changes driven by sales never pass through here; they go through
// the sale engine's atomic adjustments.
package catalog

import (
	"errors"
	"strings"

	"cantina/internal/models"
	"cantina/internal/repositories"
)

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	Category          string  `json:"category"`
	ImageURL          string  `json:"image_url"`
}

type Service interface {
	List() ([]models.Product, error)
	Create(input ProductInput) (*models.Product, error)
	Update(productID uint, input ProductInput) (*models.Product, error)
	Delete(productID uint) error
	SetImage(productID uint, imageData string) error
	LowStock() ([]models.Product, error)
}

type service struct {
	productRepo repositories.ProductRepository
}

func NewService(productRepo repositories.ProductRepository) Service {
	return &service{productRepo: productRepo}
}

func (s *service) List() ([]models.Product, error) {
	return s.productRepo.List()
}

func (s *service) Create(input ProductInput) (*models.Product, error) {
	product, err := productFromInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *service) Update(productID uint, input ProductInput) (*models.Product, error) {
	product, err := productFromInput(input)
	if err != nil {
		return nil, err
	}
	product.ID = productID
	if err := s.productRepo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *service) Delete(productID uint) error {
	err := s.productRepo.Delete(productID)
	if errors.Is(err, repositories.ErrProductNotFound) {
		return ErrProductNotFound
	}
	return err
}

func (s *service) SetImage(productID uint, imageData string) error {
	err := s.productRepo.UpdateImage(productID, imageData)
	if errors.Is(err, repositories.ErrProductNotFound) {
		return ErrProductNotFound
	}
	return err
}

func (s *service) LowStock() ([]models.Product, error) {
	return s.productRepo.ListLowStock()
}

func productFromInput(input ProductInput) (*models.Product, error) {
	if strings.TrimSpace(input.Name) == "" || input.Price < 0 {
		return nil, ErrInvalidProduct
	}
	threshold := input.LowStockThreshold
	if threshold == 0 {
		threshold = 10
	}
	category := input.Category
	if category == "" {
		category = "general"
	}
	return &models.Product{
		Name:              input.Name,
		Price:             input.Price,
		Stock:             input.Stock,
		LowStockThreshold: threshold,
		Category:          category,
		ImageURL:          input.ImageURL,
	}, nil
}
