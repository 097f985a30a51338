package entity

import "strings"

// ImageUpload is an image file accepted by a form, ready for multipart forwarding.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the payload length in bytes.
func (i *ImageUpload) Size() int64 {
	return int64(len(i.Data))
}

// IsImageContentType reports whether a MIME type names an image.
func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}
