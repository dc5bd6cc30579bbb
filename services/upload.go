package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const MaxImageSize = 10 * 1024 * 1024 // 10MB

var (
	// ErrInvalidImageData is returned for payloads that are not a base64 image data URL
	ErrInvalidImageData = errors.New("invalid image data")
	// ErrImageTooLarge is returned when the decoded image exceeds MaxImageSize
	ErrImageTooLarge = errors.New("image exceeds the maximum size of 10MB")

	dataURLPattern = regexp.MustCompile(`^data:image/([a-zA-Z0-9.+-]+);base64,(.+)$`)
)

// ImageUploadResult identifies a stored image
type ImageUploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

func newFileID() string {
	return uuid.New().String()
}

// UploadImage stores a data:image/<ext>;base64,<payload> URL under folder
func UploadImage(ctx context.Context, storage StorageProvider, dataURL, folder string) (*ImageUploadResult, error) {
	matches := dataURLPattern.FindStringSubmatch(strings.TrimSpace(dataURL))
	if matches == nil {
		return nil, ErrInvalidImageData
	}

	ext := strings.ToLower(matches[1])
	if ext == "jpeg" {
		ext = "jpg"
	}

	payload, err := base64.StdEncoding.DecodeString(matches[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImageData, err)
	}

	return storeImage(ctx, storage, payload, folder, ext)
}

// UploadImageReader stores raw image bytes under folder. The extension is
// taken from the sniffed content type, so the caller's file name is ignored.
func UploadImageReader(ctx context.Context, storage StorageProvider, data []byte, folder string) (*ImageUploadResult, error) {
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: detected %s", ErrInvalidImageData, contentType)
	}

	ext := strings.TrimPrefix(contentType, "image/")
	if ext == "jpeg" {
		ext = "jpg"
	}
	return storeImage(ctx, storage, data, folder, ext)
}

func storeImage(ctx context.Context, storage StorageProvider, data []byte, folder, ext string) (*ImageUploadResult, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is not initialized")
	}
	if len(data) == 0 {
		return nil, ErrInvalidImageData
	}
	if len(data) > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	key := GeneratePhotoKey(cleanFolder(folder), ext)
	contentType := "image/" + ext
	if ext == "jpg" {
		contentType = "image/jpeg"
	}

	result, err := storage.UploadReader(ctx, bytes.NewReader(data), key, contentType, int64(len(data)))
	if err != nil {
		return nil, err
	}

	return &ImageUploadResult{URL: result.URL, PublicID: result.Key}, nil
}

// DeleteImage removes a stored image. Missing files are not an error.
func DeleteImage(ctx context.Context, storage StorageProvider, publicID string) error {
	if publicID == "" {
		return nil
	}
	if storage == nil {
		return fmt.Errorf("storage is not initialized")
	}
	return storage.Delete(ctx, publicID)
}

func cleanFolder(folder string) string {
	folder = strings.Trim(path.Clean("/"+folder), "/")
	if folder == "" {
		return "uploads"
	}
	return folder
}
