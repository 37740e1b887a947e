package utils

import "strings"

// imageExtensions maps the image MIME types accepted for blog images to the
// extension used in object names.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageExtension returns the extension for an accepted image MIME type and
// whether the type is accepted at all.
func ImageExtension(mimeType string) (string, bool) {
	// Remove parameters if present (e.g., "image/png; charset=binary")
	cleaned := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	ext, ok := imageExtensions[cleaned]

	return ext, ok
}
