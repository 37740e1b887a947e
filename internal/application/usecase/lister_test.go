package usecase

import (
	"context"
	"errors"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"prana/internal/domain/model"
	"prana/internal/domain/query"
)

func TestListBlogs(t *testing.T) {
	t.Parallel()

	params := query.BlogParams{Category: "Yoga", Limit: 2, Page: 2}
	blogs := []model.Blog{{Title: "c"}, {Title: "d"}}

	lister := &mockLister{}
	lister.On("List", mock.Anything, query.BlogSpec(params)).Return(blogs, int64(5), nil)

	page, status, err := NewLister(lister).ListBlogs(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, blogs, page.Blogs)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)

	lister.AssertExpectations(t)
}

func TestListBlogsEmpty(t *testing.T) {
	t.Parallel()

	lister := &mockLister{}
	lister.On("List", mock.Anything, mock.Anything).Return([]model.Blog{}, int64(0), nil)

	page, status, err := NewLister(lister).ListBlogs(context.Background(), query.BlogParams{Limit: 10, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Zero(t, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestListBlogsHugeLimit(t *testing.T) {
	t.Parallel()

	params := query.BlogParams{Limit: math.MaxInt, Page: 1}
	blogs := []model.Blog{{Title: "a"}, {Title: "b"}}

	lister := &mockLister{}
	lister.On("List", mock.Anything, mock.MatchedBy(func(s query.Spec) bool {
		return s.Skip == 0 && s.Limit == math.MaxInt64
	})).Return(blogs, int64(2), nil)

	page, _, err := NewLister(lister).ListBlogs(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)

	lister.AssertExpectations(t)
}

func TestListBlogsFailure(t *testing.T) {
	t.Parallel()

	lister := &mockLister{}
	lister.On("List", mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("cursor killed"))

	_, status, err := NewLister(lister).ListBlogs(context.Background(), query.BlogParams{Limit: 10, Page: 1})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.EqualError(t, err, "cursor killed")
}
