package utils

import "strings"

// BuildProfileImageURL joins the uploads location with the stored image name,
// an empty image gives an empty url so the view can show its placeholder.
func BuildProfileImageURL(baseUrl, uploadsPath, image string) string {
	if strings.TrimSpace(image) == "" {
		return ""
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	return strings.TrimRight(baseUrl, "/") + "/" + strings.Trim(uploadsPath, "/") + "/" + strings.TrimLeft(image, "/")
}
