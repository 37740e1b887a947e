package abstraction

import (
	"context"

	"prana/internal/domain/dto"
	"prana/internal/domain/entity"
	"prana/internal/domain/model"
)

type Updater interface {
	UpdateBlog(ctx context.Context, id string, in dto.BlogInput, uploads entity.Uploads) (*model.Blog, int, error)
}
