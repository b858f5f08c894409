package models

import (
	"os"
	"time"
)

// File is a snapshot of a desktop entry file on disk
type File struct {
	Path    string    // Full path on system
	Size    int64     // File size in bytes
	ModTime time.Time // Last modification time
}

// NewFile stats path and returns its snapshot
func NewFile(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	return &File{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// Changed reports whether other describes a different version of the same file
func (f File) Changed(other File) bool {
	return f.Size != other.Size || !f.ModTime.Equal(other.ModTime)
}
