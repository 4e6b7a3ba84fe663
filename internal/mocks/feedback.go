package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/chefmaster/backend/internal/model"
)

// MockFeedbackService is a mock implementation of the feedback service
type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) Record(ctx context.Context, recipeID, rating, comment string) (*model.Feedback, error) {
	args := m.Called(ctx, recipeID, rating, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Feedback), args.Error(1)
}

func (m *MockFeedbackService) Summary(ctx context.Context, recipeID string) (*model.FeedbackSummary, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FeedbackSummary), args.Error(1)
}
