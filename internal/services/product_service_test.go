package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/catalog"
	"storefront/internal/models"
	"storefront/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func catalogFixture() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Wireless Headphones", Price: 199.99, OriginalPrice: 249.99, Category: "Electronics", Tags: []string{"wireless"}, Rating: 4.8, InStock: true, Trending: true, Recommended: true},
		{ID: "2", Name: "Fitness Watch", Price: 299.99, Category: "Wearables", Tags: []string{"fitness"}, Rating: 4.6, InStock: true, Trending: true},
		{ID: "3", Name: "Laptop Stand", Price: 79.99, Category: "Accessories", Tags: []string{"ergonomic"}, Rating: 4.4, InStock: true, Recommended: true},
	}
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := catalogFixture()
	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: "1", Name: "Wireless Headphones", Price: 199.99, Category: "Electronics", InStock: true}

	// Test successful retrieval
	mockRepo.On("GetByID", "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99 not found")).Once()
	product, err = service.GetProductByID("99")
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestProductService_QueryProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetAll").Return(catalogFixture(), nil).Once()

	spec := catalog.DefaultFilterSpec(1000)
	spec.Categories = []string{"Electronics", "Accessories"}
	spec.SortBy = catalog.SortPriceLow

	products, err := service.QueryProducts(spec)
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "3", products[0].ID)
	assert.Equal(t, "1", products[1].ID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_QueryProductsRepositoryError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetAll").Return([]models.Product(nil), fmt.Errorf("database error")).Once()

	products, err := service.QueryProducts(catalog.DefaultFilterSpec(1000))
	assert.Error(t, err)
	assert.Nil(t, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_SearchProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetAll").Return(catalogFixture(), nil).Once()

	products, err := service.SearchProducts("watch")
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "2", products[0].ID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetTrendingProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetAll").Return(catalogFixture(), nil).Once()

	products, err := service.GetTrendingProducts()
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "2", products[1].ID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetFacets(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetAll").Return(catalogFixture(), nil).Once()

	facets, err := service.GetFacets()
	assert.NoError(t, err)
	assert.Equal(t, []string{"Accessories", "Electronics", "Wearables"}, facets.Categories)
	assert.Equal(t, []string{"ergonomic", "fitness", "wireless"}, facets.Tags)
	assert.Equal(t, 299.99, facets.MaxPrice)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetFacetsEmptyCatalog(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetAll").Return([]models.Product{}, nil).Once()

	facets, err := service.GetFacets()
	assert.NoError(t, err)
	assert.Empty(t, facets.Categories)
	assert.Empty(t, facets.Tags)
	assert.Equal(t, 1000.0, facets.MaxPrice)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{ID: "7", Name: "New Product", Price: 50.0, Category: "Electronics", InStock: true}

	// Test successful creation
	mockRepo.On("Create", newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteProduct("1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	mockRepo.On("Delete", "99").Return(fmt.Errorf("product with ID 99 not found for deletion")).Once()
	err = service.DeleteProduct("99")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for deletion")
	mockRepo.AssertExpectations(t)
}
