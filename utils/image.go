package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

const maxImageSize = 10 * 1024 * 1024 // 10MB

// DecodeImageDataURL decodes a "data:image/...;base64," payload as uploaded
// by the admin menu editor and returns the raw bytes plus content type.
func DecodeImageDataURL(dataURL string) ([]byte, string, error) {
	if len(dataURL) > maxImageSize {
		return nil, "", errors.New("file too large")
	}
	if !strings.HasPrefix(dataURL, "data:image/") {
		return nil, "", errors.New("invalid image format")
	}
	parts := strings.SplitN(dataURL, ",", 2)
	if len(parts) != 2 {
		return nil, "", errors.New("invalid image format")
	}
	meta := strings.TrimPrefix(parts[0], "data:")
	contentType := strings.SplitN(meta, ";", 2)[0]

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}
