package usecase

import (
	"context"
	"net/http"
	"time"

	"prana/internal/domain/dto"
	"prana/internal/domain/entity"
	"prana/internal/domain/model"
	"prana/internal/domain/repository/broker"
	"prana/internal/domain/repository/database"
)

// Creator implements the Creator abstraction.
type Creator struct {
	writer    database.Writer
	publisher broker.Publisher
	now       func() time.Time
}

func NewCreator(writer database.Writer, publisher broker.Publisher) *Creator {
	return &Creator{
		writer:    writer,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateBlog normalizes in, fills defaults, validates the result and stores it.
func (c *Creator) CreateBlog(ctx context.Context, in dto.BlogInput,
	uploads entity.Uploads,
) (*model.Blog, int, error) {
	blog := &model.Blog{}

	if err := applyInput(blog, in, uploads); err != nil {
		return nil, http.StatusBadRequest, err
	}

	if blog.Date.IsZero() {
		blog.Date = c.now().UTC().Truncate(time.Millisecond)
	}

	blog.Trim()

	if err := blog.Validate(); err != nil {
		return nil, http.StatusBadRequest, err
	}

	if err := c.writer.Write(ctx, blog); err != nil {
		return nil, statusOf(err), err
	}

	publishBlogEvent(ctx, c.publisher, entity.BlogCreated, blog.ID)

	return blog, http.StatusCreated, nil
}
