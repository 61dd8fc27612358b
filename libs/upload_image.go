package libs

import (
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jewelry-shop/config"

	"github.com/gin-gonic/gin"
)

// SaveUploadedFile stages an uploaded image on local disk before the
// Cloudinary upload picks it up.
func SaveUploadedFile(c *gin.Context, header *multipart.FileHeader, folder string) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return "", fmt.Errorf("unsupported image format, allowed: .png, .jpg, .jpeg, .gif, .webp")
	}

	maxSize := int64(5 * 1024 * 1024)
	if config.AppConfig != nil && config.AppConfig.MaxUploadSize > 0 {
		maxSize = config.AppConfig.MaxUploadSize
	}
	if header.Size > maxSize {
		return "", fmt.Errorf("file too large (max %d bytes)", maxSize)
	}

	if err := os.MkdirAll(folder, os.ModePerm); err != nil {
		return "", fmt.Errorf("create upload folder: %w", err)
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	path := filepath.Join(folder, filename)

	if err := c.SaveUploadedFile(header, path); err != nil {
		return "", fmt.Errorf("save file: %w", err)
	}
	return path, nil
}
