package libs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func newClient() (*cloudinary.Cloudinary, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		cldURL := os.Getenv("CLOUDINARY_URL")
		if cldURL == "" {
			return nil, fmt.Errorf("cloudinary environment variables not set")
		}
		return cloudinary.NewFromURL(cldURL)
	}
	return cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
}

// UploadToCloudinary uploads the local file and removes it afterwards.
// Returns the secure URL and the public ID needed for later deletion.
func UploadToCloudinary(ctx context.Context, localPath, folder string) (string, string, error) {
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return "", "", fmt.Errorf("file not found: %s", localPath)
	}

	cld, err := newClient()
	if err != nil {
		return "", "", fmt.Errorf("cloudinary init: %w", err)
	}

	resp, err := cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("product_%d", time.Now().UnixNano()),
		Folder:   folder,
	})
	os.Remove(localPath)
	if err != nil {
		return "", "", err
	}
	if resp == nil || resp.SecureURL == "" {
		return "", "", fmt.Errorf("cloudinary returned no URL")
	}
	return resp.SecureURL, resp.PublicID, nil
}

func DeleteFromCloudinary(ctx context.Context, publicID string) error {
	cld, err := newClient()
	if err != nil {
		return fmt.Errorf("cloudinary init: %w", err)
	}

	result, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if result.Result != "ok" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}
	return nil
}
