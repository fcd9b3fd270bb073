// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package devtools contains common functionality for development tools.
package devtools

import (
	"errors"
	"os"
	"path/filepath"
)

// Root returns the module root: the closest directory containing go.mod,
// starting from the current working directory and going up.
func Root() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found, are you inside the module?")
		}
		dir = parent
	}
}

// ChdirRoot changes the current working directory to the module root.
func ChdirRoot() error {
	root, err := Root()
	if err != nil {
		return err
	}
	return os.Chdir(root)
}
