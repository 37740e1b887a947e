package usecase

import (
	"context"
	"net/http"

	"prana/internal/domain/dto"
	"prana/internal/domain/entity"
	"prana/internal/domain/model"
	"prana/internal/domain/repository/broker"
	"prana/internal/domain/repository/database"
)

// Updater implements the Updater abstraction.
type Updater struct {
	retriever database.Retriever
	updater   database.Updater
	publisher broker.Publisher
}

func NewUpdater(retriever database.Retriever, updater database.Updater, publisher broker.Publisher) *Updater {
	return &Updater{
		retriever: retriever,
		updater:   updater,
		publisher: publisher,
	}
}

// UpdateBlog merges the fields present in in onto the stored blog and
// re-validates the whole result before writing it back.
func (u *Updater) UpdateBlog(ctx context.Context, id string, in dto.BlogInput,
	uploads entity.Uploads,
) (*model.Blog, int, error) {
	blog, err := u.retriever.GetByID(ctx, id)
	if err != nil {
		status, err := notFoundAsBlog(err)

		return nil, status, err
	}

	if err := applyInput(blog, in, uploads); err != nil {
		return nil, http.StatusBadRequest, err
	}

	blog.Trim()

	if err := blog.Validate(); err != nil {
		return nil, http.StatusBadRequest, err
	}

	if err := u.updater.Update(ctx, blog); err != nil {
		status, err := notFoundAsBlog(err)

		return nil, status, err
	}

	publishBlogEvent(ctx, u.publisher, entity.BlogUpdated, blog.ID)

	return blog, http.StatusOK, nil
}
