// Package storage materializes uploaded audio files on disk and owns their
// lifecycle until a database record references them.
package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// StoredAudio is an uploaded audio file saved under the upload directory.
// The handler that saved it owns the file: Cleanup removes it unless Keep
// was called first, so every exit path of a request funnels through a single
// deletion point instead of ad hoc removes at each error site.
type StoredAudio struct {
	Path         string // full path on disk
	OriginalName string // client-supplied file name, untrusted
	StoredName   string // server-assigned name, what gets persisted as file_path

	keep bool
}

// Save writes an uploaded multipart file under dir with a server-assigned
// name and returns a handle that owns the file.
func Save(dir string, file *multipart.FileHeader) (*StoredAudio, error) {
	storedName := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	dst := filepath.Join(dir, storedName)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	if err := saveMultipartFile(file, dst); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &StoredAudio{
		Path:         dst,
		OriginalName: file.Filename,
		StoredName:   storedName,
	}, nil
}

// Keep marks the file as referenced by a persisted record. Cleanup becomes
// a no-op afterwards.
func (s *StoredAudio) Keep() {
	s.keep = true
}

// Cleanup removes the file unless it was kept. Best-effort: removal failures
// are logged, never escalated.
func (s *StoredAudio) Cleanup() {
	if s == nil || s.keep {
		return
	}
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", s.Path).Msg("failed to remove uploaded file")
	}
}

// Remove deletes a stored file by its assigned name. A missing file is not
// an error.
func Remove(dir, storedName string) error {
	path := filepath.Join(dir, storedName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(path)
}

/* helper */
func saveMultipartFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.ReadFrom(src)
	return err
}
