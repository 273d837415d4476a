package ext

import (
	"os"
	"path/filepath"
	"strings"
)

// ReplaceHomeDirWithTilde shortens an absolute path under the home directory to ~/...
func ReplaceHomeDirWithTilde(path string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return path
	}
	if path == homeDir {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, homeDir+string(filepath.Separator)); ok {
		return filepath.Join("~", rest)
	}
	return path
}

// ResolvePath returns path unchanged when absolute, otherwise joined onto baseDir.
func ResolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ExecutableDir is the directory holding the running binary, with symlinks resolved.
// Falls back to the working directory when the executable cannot be located.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
