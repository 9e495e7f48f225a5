package libs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryEnabled reports whether off-box image storage is configured.
func CloudinaryEnabled() bool {
	return os.Getenv("CLOUDINARY_URL") != ""
}

// UploadToCloudinary pushes a locally saved image to Cloudinary and
// removes the local copy. Returns the secure URL to store instead of
// the /uploads path.
func UploadToCloudinary(localPath, folder string) (string, error) {
	cldURL := os.Getenv("CLOUDINARY_URL")
	if cldURL == "" {
		return "", fmt.Errorf("cloudinary environment variables not set")
	}

	cld, err := cloudinary.NewFromURL(cldURL)
	if err != nil {
		return "", fmt.Errorf("cloudinary init failed: %w", err)
	}

	resp, err := cld.Upload.Upload(context.Background(), localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("%s_%d", folder, time.Now().UnixNano()),
		Folder:   folder,
	})

	os.Remove(localPath)

	if err != nil {
		return "", err
	}
	if resp == nil || resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary returned empty URL")
	}

	return resp.SecureURL, nil
}
