package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"prana/internal/domain/model"
	"prana/internal/domain/query"
)

type mockWriter struct{ mock.Mock }

func (m *mockWriter) Write(ctx context.Context, blog *model.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

type mockUpdater struct{ mock.Mock }

func (m *mockUpdater) Update(ctx context.Context, blog *model.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

type mockRetriever struct{ mock.Mock }

func (m *mockRetriever) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	args := m.Called(ctx, id)
	blog, _ := args.Get(0).(*model.Blog)

	return blog, args.Error(1)
}

type mockRemover struct{ mock.Mock }

func (m *mockRemover) RemoveByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockLister struct{ mock.Mock }

func (m *mockLister) List(ctx context.Context, spec query.Spec) ([]model.Blog, int64, error) {
	args := m.Called(ctx, spec)
	blogs, _ := args.Get(0).([]model.Blog)

	return blogs, args.Get(1).(int64), args.Error(2)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)

	return user, args.Error(1)
}

type mockActivityWriter struct{ mock.Mock }

func (m *mockActivityWriter) TouchLastActivity(ctx context.Context, id string, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, message string) error {
	return m.Called(ctx, message).Error(0)
}
