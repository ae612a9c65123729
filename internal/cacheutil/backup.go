// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"fmt"
	"path/filepath"
)

var backupDirs = []string{"backups"}

// SaveBackup stores the current contents of target before it is overwritten.
// Backups are keyed by the absolute target path; only the latest is kept.
func SaveBackup(target string, data []byte) error {
	key, err := backupKey(target)
	if err != nil {
		return err
	}
	return Write(backupDirs, key, data)
}

// LoadBackup returns the latest backup of target.
func LoadBackup(target string) (*Entry, bool) {
	key, err := backupKey(target)
	if err != nil {
		return nil, false
	}
	return Read(backupDirs, key)
}

// DropBackup removes the backup of target.
func DropBackup(target string) error {
	key, err := backupKey(target)
	if err != nil {
		return err
	}
	return Remove(backupDirs, key)
}

func backupKey(target string) (string, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("failed to resolve backup key for %s: %w", target, err)
	}
	return abs, nil
}
