package abstraction

import (
	"context"

	"prana/internal/domain/dto"
	"prana/internal/domain/entity"
	"prana/internal/domain/model"
)

type Creator interface {
	CreateBlog(ctx context.Context, in dto.BlogInput, uploads entity.Uploads) (*model.Blog, int, error)
}
