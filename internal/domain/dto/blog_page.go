package dto

import "prana/internal/domain/model"

type BlogPage struct {
	Blogs       []model.Blog
	Total       int64
	TotalPages  int64
	CurrentPage int
}
