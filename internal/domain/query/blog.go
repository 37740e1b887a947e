package query

import (
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"

	"prana/internal/domain/model"
)

const (
	// AllCategories is the category value that disables category filtering.
	AllCategories = "All"

	DefaultLimit = 10
	DefaultPage  = 1
)

// BlogParams are the optional listing filters after parsing. A nil Featured
// means the caller did not ask for featured filtering at all.
type BlogParams struct {
	Category string
	Featured *bool
	Tags     []string
	Search   string
	Limit    int
	Page     int
}

// ParseBlogParams reads listing filters from query values, applying the
// defaults for limit and page.
func ParseBlogParams(v url.Values) (BlogParams, error) {
	p := BlogParams{
		Category: v.Get("category"),
		Search:   v.Get("search"),
	}

	if _, ok := v["featured"]; ok {
		featured := v.Get("featured") == "true"
		p.Featured = &featured
	}

	if tags := v.Get("tags"); tags != "" {
		p.Tags = model.SplitTags(tags)
	}

	w := window{Limit: DefaultLimit, Page: DefaultPage}
	if s := v.Get("limit"); s != "" {
		w.Limit = atoi(s)
	}
	if s := v.Get("page"); s != "" {
		w.Page = atoi(s)
	}

	if err := model.Check("Query", w, windowMessage); err != nil {
		return BlogParams{}, err
	}

	if (Pagination{Limit: w.Limit, Page: w.Page}).Overflows() {
		verr := &model.ValidationError{Entity: "Query"}
		verr.Add("page", "page is out of range for this limit")

		return BlogParams{}, verr
	}

	p.Limit, p.Page = w.Limit, w.Page

	return p, nil
}

type window struct {
	Limit int `json:"limit" validate:"min=1"`
	Page  int `json:"page"  validate:"min=1"`
}

func windowMessage(fe validator.FieldError) string {
	return fe.Field() + " must be a positive integer"
}

// atoi maps anything that is not an int to 0 so it fails the window check.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}

// BlogSpec builds the listing query. Filters combine with AND, results are
// newest first.
func BlogSpec(p BlogParams) Spec {
	s := Spec{
		Sort: []SortField{{Field: "date", Desc: true}, {Field: "_id", Desc: true}},
	}

	categoryRule(&s, p.Category)
	featuredRule(&s, p.Featured)
	tagsRule(&s, p.Tags)
	searchRule(&s, p.Search)

	page := Pagination{Limit: p.Limit, Page: p.Page}
	s.Skip = page.Skip()
	s.Limit = int64(page.normalizedLimit())

	return s
}

func categoryRule(s *Spec, category string) {
	if category == "" || category == AllCategories {
		return
	}

	s.Where("category", Equal, category)
}

func featuredRule(s *Spec, featured *bool) {
	if featured == nil {
		return
	}

	s.Where("featured", Equal, *featured)
}

// tagsRule matches blogs sharing at least one tag with the request.
func tagsRule(s *Spec, tags []string) {
	if len(tags) == 0 {
		return
	}

	s.Where("tags", In, tags)
}

func searchRule(s *Spec, search string) {
	if search == "" {
		return
	}

	s.WhereAny(
		Condition{Field: "title", Operator: ContainsFold, Value: search},
		Condition{Field: "excerpt", Operator: ContainsFold, Value: search},
		Condition{Field: "content", Operator: ContainsFold, Value: search},
	)
}
