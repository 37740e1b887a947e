package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"prana/internal/domain/repository/database"
)

func TestDeleteBlog(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID().Hex()

	tests := []struct {
		name      string
		removeErr error
		status    int
		wantErr   string
		published bool
	}{
		{"deleted", nil, http.StatusOK, "", true},
		{"unknown id", database.ErrNotFound, http.StatusNotFound, "blog not found", false},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "connection reset", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			remover := &mockRemover{}
			remover.On("RemoveByID", mock.Anything, id).Return(tt.removeErr)
			publisher := &mockPublisher{}
			publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

			status, err := NewDeleter(remover, publisher).DeleteBlog(context.Background(), id)
			assert.Equal(t, tt.status, status)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}

			if tt.published {
				publisher.AssertNumberOfCalls(t, "Publish", 1)
			} else {
				publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
			}
		})
	}
}
