package usecase

import (
	"fmt"
	"strings"
	"time"

	"prana/internal/domain/dto"
	"prana/internal/domain/entity"
	"prana/internal/domain/model"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse %q as a date", s)
}

// applyInput merges the fields present in in onto blog. Uploaded images take
// precedence over image URLs sent in the body. An empty date string counts as
// not sent.
func applyInput(blog *model.Blog, in dto.BlogInput, uploads entity.Uploads) error {
	setString(&blog.Title, in.Title)
	setString(&blog.Category, in.Category)
	setString(&blog.Author, in.Author)
	setString(&blog.AuthorRole, in.AuthorRole)
	setString(&blog.Location, in.Location)
	setString(&blog.Excerpt, in.Excerpt)
	setString(&blog.Content, in.Content)
	setString(&blog.ReadTime, in.ReadTime)

	if in.AuthorImage != nil {
		blog.AuthorImage = nullable(*in.AuthorImage)
	}
	if in.Image != nil {
		blog.Image = nullable(*in.Image)
	}

	if in.Tags != nil {
		blog.Tags = append([]string{}, (*in.Tags)...)
	}

	if in.Featured != nil {
		blog.Featured = bool(*in.Featured)
	}

	if in.Date != nil && strings.TrimSpace(*in.Date) != "" {
		date, err := parseDate(*in.Date)
		if err != nil {
			verr := &model.ValidationError{Entity: "Blog"}
			verr.Add("date", err.Error())

			return verr
		}
		blog.Date = date
	}

	if url, ok := uploads.URL(entity.ImageField); ok {
		blog.Image = &url
	}
	if url, ok := uploads.URL(entity.AuthorImageField); ok {
		blog.AuthorImage = &url
	}

	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func nullable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return &s
}
