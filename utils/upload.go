package utils

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// SanitizeFilename reduces an uploaded name to a safe bare filename:
// no path components, only word characters, dots and dashes.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}

// SaveUpload stores the named multipart file under dir and returns the
// stored filename. Missing file is not an error (the field is optional);
// a same-named file is overwritten.
func SaveUpload(c *gin.Context, field, dir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	name := SanitizeFilename(file.Filename)
	if name == "" {
		return "", nil
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}
