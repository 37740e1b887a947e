package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TitleMaxLength   = 100
	ExcerptMaxLength = 300
)

// Categories is the closed set a blog's category must belong to.
var Categories = []string{"Yoga", "Wellness", "Fitness", "Meditation", "Mindfulness", "Nutrition", "Lifestyle"}

type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title"         json:"title"      validate:"required,max=100"`
	Category    string             `bson:"category"      json:"category"   validate:"required,oneof=Yoga Wellness Fitness Meditation Mindfulness Nutrition Lifestyle"`
	Author      string             `bson:"author"        json:"author"     validate:"required"`
	AuthorRole  string             `bson:"authorRole"    json:"authorRole" validate:"required"`
	AuthorImage *string            `bson:"authorImage"   json:"authorImage"`
	Date        time.Time          `bson:"date"          json:"date"       validate:"required"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Excerpt     string             `bson:"excerpt"       json:"excerpt"    validate:"required,max=300"`
	Content     string             `bson:"content"       json:"content"    validate:"required"`
	ReadTime    string             `bson:"readTime"      json:"readTime"   validate:"required"`
	Tags        []string           `bson:"tags"          json:"tags"`
	Featured    bool               `bson:"featured"      json:"featured"`
	Image       *string            `bson:"image"         json:"image"`
	Views       int64              `bson:"views"         json:"views"      validate:"min=0"`
	Likes       int64              `bson:"likes"         json:"likes"      validate:"min=0"`
	Comments    int64              `bson:"comments"      json:"comments"   validate:"min=0"`
	Bookmarks   int64              `bson:"bookmarks"     json:"bookmarks"  validate:"min=0"`
	CreatedAt   time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"     json:"updatedAt"`
}

var blogMessages = map[string]string{
	"title.required":      "Please provide a blog title",
	"title.max":           fmt.Sprintf("Title cannot be more than %d characters", TitleMaxLength),
	"category.required":   "Please provide a category",
	"author.required":     "Please provide author name",
	"authorRole.required": "Please provide author role",
	"date.required":       "Please provide blog date",
	"excerpt.required":    "Please provide blog excerpt",
	"excerpt.max":         fmt.Sprintf("Excerpt cannot be more than %d characters", ExcerptMaxLength),
	"content.required":    "Please provide blog content",
	"readTime.required":   "Please provide estimated read time",
}

func blogMessage(fe validator.FieldError) string {
	if msg, ok := blogMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("`%v` is not a valid enum value for path `%s`", fe.Value(), fe.Field())
	case "min":
		return fmt.Sprintf("%s cannot be negative", fe.Field())
	}

	return fe.Error()
}

// Trim strips surrounding whitespace from the text fields that are stored trimmed.
func (b *Blog) Trim() {
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)
	b.AuthorRole = strings.TrimSpace(b.AuthorRole)
	b.Location = strings.TrimSpace(b.Location)
	b.Excerpt = strings.TrimSpace(b.Excerpt)
	b.Content = strings.TrimSpace(b.Content)
	b.ReadTime = strings.TrimSpace(b.ReadTime)

	tags := make([]string, 0, len(b.Tags))
	for _, t := range b.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	b.Tags = tags
}

// Validate checks required fields, length caps, enum membership and counter signs.
// All violations are reported together.
func (b *Blog) Validate() error {
	return Check("Blog", b, blogMessage)
}
