package usecase

import (
	"context"
	"errors"
	"net/http"

	"prana/internal/domain/model"
	"prana/internal/domain/repository/database"
)

// Getter implements the Getter abstraction for retrieving blog information.
type Getter struct {
	retriever database.Retriever
}

// NewGetter creates a new Getter usecase.
func NewGetter(retriever database.Retriever) *Getter {
	return &Getter{
		retriever: retriever,
	}
}

// GetBlog looks a blog up by id. A missing blog is a 404, a failing lookup a 500.
func (g *Getter) GetBlog(ctx context.Context, id string) (*model.Blog, int, error) {
	blog, err := g.retriever.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, http.StatusNotFound, errBlogNotFound
		}

		return nil, http.StatusInternalServerError, err
	}

	return blog, http.StatusOK, nil
}

type UserGetter struct {
	users database.UserRetriever
}

func NewUserGetter(users database.UserRetriever) *UserGetter {
	return &UserGetter{users: users}
}

func (g *UserGetter) GetUser(ctx context.Context, id string) (*model.User, int, error) {
	user, err := g.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, http.StatusNotFound, errors.New("user not found")
		}

		return nil, http.StatusInternalServerError, err
	}

	return user, http.StatusOK, nil
}
