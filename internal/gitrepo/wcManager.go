package gitrepo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	. "repocloner/internal/log"
)

// PrepareCloneRoot creates the directory working copies are cloned into.
func PrepareCloneRoot(cloneRoot string) error {
	if err := os.MkdirAll(cloneRoot, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create clone root directory %s: %w", cloneRoot, err)
	}
	return nil
}

// RemoveWorkingCopy deletes projectPath recursively. removed reports whether anything was there.
func RemoveWorkingCopy(projectPath string) (removed bool, err error) {
	if _, err := os.Lstat(projectPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to inspect %s: %w", projectPath, err)
	}
	Log.Debugf("Removing existing working copy %s", projectPath)
	if err := os.RemoveAll(projectPath); err != nil {
		return true, fmt.Errorf("failed to remove %s: %w", projectPath, err)
	}
	return true, nil
}
