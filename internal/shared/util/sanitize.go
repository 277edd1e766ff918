package util

import (
	"errors"
	"strings"
)

const maxFileNameLen = 128

// SanitizeFileName makes an uploaded image name safe to embed in a storage
// key: path separators are flattened, traversal patterns rejected, and
// overlong names truncated.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	if len(s) > maxFileNameLen {
		s = s[len(s)-maxFileNameLen:]
	}
	return s, nil
}
