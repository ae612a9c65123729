// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveFile returns the absolute, cleaned form of path. The file itself
// need not exist, but path must not name a directory.
func ResolveFile(path string) (string, error) {
	if path == "" {
		return "", os.ErrInvalid
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}

	return abs, nil
}

// IsExistingFile reports whether path exists and is not a directory.
func IsExistingFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
