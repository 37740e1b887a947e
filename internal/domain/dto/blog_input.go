package dto

import (
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"prana/internal/domain/model"
)

// TagList accepts either a JSON array of strings or a single comma-delimited
// string and always holds the trimmed sequence. Only the string form is split.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = model.SplitTags(s)

		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.New("tags must be a string or an array of strings")
	}

	tags := make([]string, 0, len(list))
	for _, tag := range list {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	*t = tags

	return nil
}

// Flag accepts a JSON boolean or a string strconv.ParseBool understands.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			*f = Flag(b)

			return nil
		}
	}

	return errors.New("featured must be a boolean")
}

// BlogInput is a create or update payload. Nil fields were not sent.
type BlogInput struct {
	Title       *string  `json:"title"`
	Category    *string  `json:"category"`
	Author      *string  `json:"author"`
	AuthorRole  *string  `json:"authorRole"`
	AuthorImage *string  `json:"authorImage"`
	Date        *string  `json:"date"`
	Location    *string  `json:"location"`
	Excerpt     *string  `json:"excerpt"`
	Content     *string  `json:"content"`
	ReadTime    *string  `json:"readTime"`
	Tags        *TagList `json:"tags"`
	Featured    *Flag    `json:"featured"`
	Image       *string  `json:"image"`
}

// BlogInputFromForm reads a urlencoded or multipart form. A single tags value
// is split on commas, repeated tags values are taken one token each.
func BlogInputFromForm(form url.Values) (BlogInput, error) {
	in := BlogInput{
		Title:       formValue(form, "title"),
		Category:    formValue(form, "category"),
		Author:      formValue(form, "author"),
		AuthorRole:  formValue(form, "authorRole"),
		AuthorImage: formValue(form, "authorImage"),
		Date:        formValue(form, "date"),
		Location:    formValue(form, "location"),
		Excerpt:     formValue(form, "excerpt"),
		Content:     formValue(form, "content"),
		ReadTime:    formValue(form, "readTime"),
		Image:       formValue(form, "image"),
	}

	if values, ok := form["tags"]; ok {
		tags := TagList(model.SplitTags(strings.Join(values, ",")))
		in.Tags = &tags
	}

	if s := formValue(form, "featured"); s != nil {
		featured, err := strconv.ParseBool(*s)
		if err != nil {
			return BlogInput{}, errors.New("featured must be a boolean")
		}
		flag := Flag(featured)
		in.Featured = &flag
	}

	return in, nil
}

func formValue(form url.Values, key string) *string {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return nil
	}

	v := values[0]

	return &v
}
