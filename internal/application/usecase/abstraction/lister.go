package abstraction

import (
	"context"

	"prana/internal/domain/dto"
	"prana/internal/domain/query"
)

type Lister interface {
	ListBlogs(ctx context.Context, params query.BlogParams) (dto.BlogPage, int, error)
}
