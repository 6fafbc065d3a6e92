package errors

import (
	"os"
	"strings"
	"unicode"
)

const maxPathLength = 1024

// ValidateOutputPath validates a path that an artifact will be written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 1024 characters
//   - No null bytes or control characters
//   - Must not end in a path separator or name an existing directory
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator)) {
		return New(ErrCodeInvalidPath, "output path %q is a directory", path)
	}

	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return New(ErrCodeInvalidPath, "output path %q is a directory", path)
	}

	return nil
}

// ValidateInputPath checks that path names a readable regular file.
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "input path cannot be empty")
	}
	fi, err := os.Stat(path)
	if os.IsNotExist(err) {
		return New(ErrCodeFileNotFound, "input file %q does not exist", path)
	}
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "stat %s", path)
	}
	if fi.IsDir() {
		return New(ErrCodeInvalidPath, "input path %q is a directory", path)
	}
	return nil
}
