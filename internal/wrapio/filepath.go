package wrapio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrOutputPath is returned when no output path can be derived from an input.
var ErrOutputPath = errors.New("cannot derive output path")

// OutputPath derives an output filename from the input filename by replacing
// its extension with ext; inputs without an extension just get ext appended.
// An error is returned for an empty or directory-like input, or if the
// derived path would overwrite the input.
func OutputPath(input, ext string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%w: empty input path", ErrOutputPath)
	}
	if os.IsPathSeparator(input[len(input)-1]) {
		return "", fmt.Errorf("%w: %q names a directory", ErrOutputPath, input)
	}
	if ext == "" {
		return "", fmt.Errorf("%w: empty output extension", ErrOutputPath)
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	out := strings.TrimSuffix(input, filepath.Ext(input)) + ext
	if out == input {
		return "", fmt.Errorf("%w: %q already has extension %q", ErrOutputPath, input, ext)
	}
	return out, nil
}

// FindWDFile attempts to find a named file relative to the current working
// directory, checking every parent directory until one is found.
// It returns stat info and an absolute path, or a nil info if nothing was
// found.
func FindWDFile(name string) (os.FileInfo, string, error) {
	info, err := os.Stat(name)
	if err == nil {
		path, err := filepath.Abs(name)
		return info, path, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}

	for {
		path := filepath.Join(wd, name)
		if info, err = os.Stat(path); err == nil {
			return info, path, nil
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			return nil, "", nil
		}
		wd = parent
	}
}
