package entity

// UploadResult describes one stored image: the form field it came from, where
// it lives in object storage and the URL clients use to fetch it.
type UploadResult struct {
	Field    string `json:"field"`
	Bucket   string `json:"bucket"`
	Object   string `json:"object"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Size     int64  `json:"size"`
}

// Uploads indexes upload results by form field.
type Uploads map[string]UploadResult

// URL returns the resolved URL for field, if a file was uploaded under it.
func (u Uploads) URL(field string) (string, bool) {
	r, ok := u[field]
	if !ok || r.Location == "" {
		return "", false
	}

	return r.Location, true
}

// Form fields that carry blog images.
const (
	ImageField       = "image"
	AuthorImageField = "authorImage"
)
