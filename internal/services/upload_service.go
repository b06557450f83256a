package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const maxFileSize = 5 * 1024 * 1024 // 5MB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ErrInvalidImage marks a rejected upload (extension, content type or size).
// Handlers map it to a bad-request outcome.
var ErrInvalidImage = errors.New("invalid image")

type UploadService interface {
	SaveImages(files []*multipart.FileHeader) ([]string, error)
}

type uploadService struct {
	uploadDir string
}

func NewUploadService(uploadDir string) UploadService {
	return &uploadService{uploadDir: uploadDir}
}

// SaveImages validates and stores each file, returning the public URL for
// every stored one. Files are processed in order; a failure on file N leaves
// files 1..N-1 on disk, matching the shipped non-atomic batch behavior.
func (s *uploadService) SaveImages(files []*multipart.FileHeader) ([]string, error) {
	uploadedURLs := make([]string, 0, len(files))

	for _, fileHeader := range files {
		url, err := s.saveImage(fileHeader)
		if err != nil {
			return nil, err
		}
		uploadedURLs = append(uploadedURLs, url)
	}

	return uploadedURLs, nil
}

func (s *uploadService) saveImage(fileHeader *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: only images are allowed (.jpg, .jpeg, .png, .webp)", ErrInvalidImage)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: only image files are allowed", ErrInvalidImage)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Buffered fully in memory before the single write, no streaming.
	contents, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if len(contents) > maxFileSize {
		return "", fmt.Errorf("%w: file %s size exceeds 5MB limit", ErrInvalidImage, fileHeader.Filename)
	}

	filename := fmt.Sprintf("%d-%s%s", time.Now().Unix(), randomHex(4), ext)
	filePath := filepath.Join(s.uploadDir, filename)

	if err := os.WriteFile(filePath, contents, 0o644); err != nil {
		return "", fmt.Errorf("failed to save image %s: %w", fileHeader.Filename, err)
	}
	log.Printf("Image saved: %s", filename)

	// The /api prefix matches the nginx proxy routing in front of the app.
	return "/api/static/" + filename, nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%08x", time.Now().UnixNano())[:n*2]
	}
	return hex.EncodeToString(b)
}
