package statement

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileInfo describes one statement export found in the input directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Scan returns the statement exports (*.xls, *.xlsx, *.xlsm) in dir.
// A missing directory yields an empty result, not an error.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading statements dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".xls" && ext != ".xlsx" && ext != ".xlsm" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}
