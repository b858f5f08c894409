package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// ComputeFileHash computes the SHA256 hash of a file
func ComputeFileHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// QuickHash returns first 8 chars of hash for display
func QuickHash(hash string) string {
	if len(hash) >= 8 {
		return hash[:8]
	}
	return hash
}

// latestMatching returns the newest backup of path when its content hash
// equals hash
func (b *BackupManager) latestMatching(path, hash string) (string, bool) {
	backups, err := b.List(path)
	if err != nil || len(backups) == 0 {
		return "", false
	}

	latest := backups[len(backups)-1]
	latestHash, err := ComputeFileHash(latest)
	if err != nil || latestHash != hash {
		return "", false
	}
	return latest, true
}
