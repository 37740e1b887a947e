package usecase

import (
	"context"
	"net/http"

	"prana/internal/domain/dto"
	"prana/internal/domain/query"
	"prana/internal/domain/repository/database"
)

// Lister implements the Lister abstraction for retrieving blog pages.
type Lister struct {
	lister database.Lister
}

// NewLister creates a new Lister usecase.
func NewLister(lister database.Lister) *Lister {
	return &Lister{
		lister: lister,
	}
}

// ListBlogs returns one page of blogs matching params, newest first.
func (l *Lister) ListBlogs(ctx context.Context, params query.BlogParams) (dto.BlogPage, int, error) {
	blogs, total, err := l.lister.List(ctx, query.BlogSpec(params))
	if err != nil {
		return dto.BlogPage{}, http.StatusInternalServerError, err
	}

	page := query.Pagination{Limit: params.Limit, Page: params.Page}

	return dto.BlogPage{
		Blogs:       blogs,
		Total:       total,
		TotalPages:  page.TotalPages(total),
		CurrentPage: page.CurrentPage(),
	}, http.StatusOK, nil
}
