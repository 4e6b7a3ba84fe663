package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/chefmaster/backend/internal/imaging"
	"github.com/pageza/chefmaster/backend/internal/service"
	"github.com/pageza/chefmaster/backend/internal/store"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// Generate mocks the Generate method
func (m *MockRecipeService) Generate(ctx context.Context, req service.GenerateRequest) (*service.StoredRecipe, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StoredRecipe), args.Error(1)
}

// Get mocks the Get method
func (m *MockRecipeService) Get(ctx context.Context, id string) (*service.StoredRecipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StoredRecipe), args.Error(1)
}

// List mocks the List method
func (m *MockRecipeService) List(ctx context.Context, f store.ListFilter) ([]*service.StoredRecipe, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*service.StoredRecipe), args.Error(1)
}

// Image mocks the Image method
func (m *MockRecipeService) Image(ctx context.Context, id string) (*imaging.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*imaging.Image), args.Error(1)
}

// Facets mocks the Facets method
func (m *MockRecipeService) Facets() service.FacetMenu {
	args := m.Called()
	return args.Get(0).(service.FacetMenu)
}
