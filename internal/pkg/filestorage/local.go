package filestorage

import (
	"fmt"
	"io"
	"math/rand/v2"
	"mime"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/ozgurweb/sitepanel/internal/pkg/logger"
)

// Storage is the interface for saving uploaded files
type Storage interface {
	// Save writes an uploaded file and returns the public URL it will be
	// served under
	Save(fileHeader *multipart.FileHeader) (string, error)

	// Remove deletes a stored file given its public URL. Missing files are
	// not an error.
	Remove(fileURL string) error
}

// LocalStorage saves uploads on the local filesystem under date-partitioned
// directories, mirroring the /uploads static serving layout.
type LocalStorage struct {
	basePath   string // root directory on disk, e.g. ./public/uploads
	publicBase string // URL prefix the files are served under, e.g. /uploads
}

// NewLocalStorage creates a LocalStorage rooted at basePath. The directory
// is created if missing.
func NewLocalStorage(basePath, publicBase string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &LocalStorage{
		basePath:   basePath,
		publicBase: "/" + strings.Trim(publicBase, "/"),
	}, nil
}

// preferred extensions for the image types the admin panel accepts;
// mime.ExtensionsByType is the fallback for anything else
var preferredExt = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// Save stores an uploaded file under <basePath>/<YYYY-MM-DD>/ with a
// collision-resistant name and returns its public URL.
//
// The filename keeps the original stem and appends a unix-millisecond
// timestamp plus a random integer, so two uploads of the same file within
// the same second still get distinct names. The extension comes from the
// declared content type, falling back to the original filename's extension.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Dated subdirectory, created if missing. Concurrent requests may race
	// here; MkdirAll succeeds when the directory already exists.
	day := time.Now().UTC().Format("2006-01-02")
	dir := filepath.Join(ls.basePath, day)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create upload directory")
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uniqueFilename(fileHeader)
	dstPath := filepath.Join(dir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write uploaded file")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	fileURL := path.Join(ls.publicBase, day, filename)
	logger.Info().Str("filename", fileHeader.Filename).Str("url", fileURL).Msg("Upload stored")
	return fileURL, nil
}

// uniqueFilename derives the stored name: original stem, uniqueness suffix,
// extension from the declared media type.
func uniqueFilename(fileHeader *multipart.FileHeader) string {
	originalExt := filepath.Ext(fileHeader.Filename)
	stem := strings.TrimSuffix(fileHeader.Filename, originalExt)
	if stem == "" {
		stem = "upload"
	}

	ext := extensionFor(fileHeader.Header.Get("Content-Type"), originalExt)
	suffix := fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.IntN(1_000_000_000))
	return fmt.Sprintf("%s-%s%s", stem, suffix, ext)
}

func extensionFor(contentType, fallback string) string {
	if ext, ok := preferredExt[contentType]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return fallback
}

// Remove deletes a stored file given its public URL. Nothing on the request
// path calls this; superseded and orphaned assets are intentionally left in
// place.
func (ls *LocalStorage) Remove(fileURL string) error {
	rel := strings.TrimPrefix(fileURL, ls.publicBase)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" || strings.Contains(rel, "..") {
		return fmt.Errorf("invalid file url: %s", fileURL)
	}

	physicalPath := filepath.Join(ls.basePath, filepath.FromSlash(rel))
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}
	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
