package services

import (
	"storefront/internal/catalog"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// defaultMaxPrice is the price-slider ceiling when the catalog is
// empty and there is no real maximum to derive.
const defaultMaxPrice = 1000

// ProductService handles business logic related to products: CRUD
// against the repository plus the filtered, sorted, and faceted views
// built by the catalog query engine.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products in catalog order.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// QueryProducts returns the catalog filtered and ordered by spec.
func (s *ProductService) QueryProducts(spec catalog.FilterSpec) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return catalog.Apply(products, spec), nil
}

// SearchProducts returns the products matching a free-text query.
func (s *ProductService) SearchProducts(query string) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return catalog.Search(products, query), nil
}

// GetTrendingProducts returns the products flagged as trending.
func (s *ProductService) GetTrendingProducts() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return catalog.Trending(products), nil
}

// GetRecommendedProducts returns the products flagged as recommended.
func (s *ProductService) GetRecommendedProducts() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return catalog.Recommended(products), nil
}

// GetFacets derives the filter-control summaries for the catalog.
func (s *ProductService) GetFacets() (*catalog.Facets, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return &catalog.Facets{
		Categories: catalog.Categories(products),
		Tags:       catalog.Tags(products),
		MaxPrice:   catalog.MaxPrice(products, defaultMaxPrice),
	}, nil
}
