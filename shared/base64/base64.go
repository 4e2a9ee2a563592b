package base64

import "strings"

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

// GetContentType extracts the media type from a data URI such as
// "data:image/png;base64,...". It returns an empty string when the input
// carries no base64 marker.
func GetContentType(file string) string {
	start := len(dataPrefix)
	end := strings.Index(file, base64Marker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}
