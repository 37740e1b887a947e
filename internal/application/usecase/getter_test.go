package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"prana/internal/domain/model"
	"prana/internal/domain/repository/database"
)

func TestGetBlog(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		retriever := &mockRetriever{}
		retriever.On("GetByID", mock.Anything, id.Hex()).Return(storedBlog(id), nil)

		blog, status, err := NewGetter(retriever).GetBlog(context.Background(), id.Hex())
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, id, blog.ID)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		retriever := &mockRetriever{}
		retriever.On("GetByID", mock.Anything, "nope").Return(nil, database.ErrNotFound)

		blog, status, err := NewGetter(retriever).GetBlog(context.Background(), "nope")
		assert.Nil(t, blog)
		assert.Equal(t, http.StatusNotFound, status)
		assert.EqualError(t, err, "blog not found")
	})

	t.Run("lookup failure", func(t *testing.T) {
		t.Parallel()

		retriever := &mockRetriever{}
		retriever.On("GetByID", mock.Anything, id.Hex()).Return(nil, errors.New("server selection timeout"))

		_, status, err := NewGetter(retriever).GetBlog(context.Background(), id.Hex())
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.EqualError(t, err, "server selection timeout")
	})
}

func TestGetUser(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()

	users := &mockUsers{}
	users.On("GetUserByID", mock.Anything, id.Hex()).Return(&model.User{ID: id, Role: "admin"}, nil)
	users.On("GetUserByID", mock.Anything, "gone").Return(nil, database.ErrNotFound)

	user, status, err := NewUserGetter(users).GetUser(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "admin", user.Role)

	_, status, err = NewUserGetter(users).GetUser(context.Background(), "gone")
	assert.Equal(t, http.StatusNotFound, status)
	assert.EqualError(t, err, "user not found")
}
