package services

import (
	"bytes"
	"fmt"

	"github.com/demobank/bankcli/internal/common"
)

// MaxProfilePictureSize caps uploads at 5 MiB, matching the server limit, so
// oversized files are rejected before any bytes travel.
const MaxProfilePictureSize = 5 * 1024 * 1024

// Accepted picture formats, identified by their magic bytes rather than the
// file extension.
var pictureHeaders = map[string][][]byte{
	"image/jpeg": {[]byte("\xFF\xD8")},
	"image/png":  {[]byte("\x89PNG\r\n\x1a\n")},
	"image/gif":  {[]byte("GIF87a"), []byte("GIF89a")},
}

// ValidateProfilePicture checks content against the accepted formats and the
// size cap. It returns common.ErrValidation (wrapped with detail) when the
// file must not be uploaded.
func ValidateProfilePicture(content []byte) error {
	if len(content) == 0 {
		return fmt.Errorf("%w: file is empty", common.ErrValidation)
	}
	if len(content) > MaxProfilePictureSize {
		return fmt.Errorf("%w: file too large, maximum size is 5MB", common.ErrValidation)
	}
	if sniffPictureType(content) == "" {
		return fmt.Errorf("%w: invalid file type, only JPEG, PNG and GIF are allowed", common.ErrValidation)
	}
	return nil
}

func sniffPictureType(content []byte) string {
	for mimeType, headers := range pictureHeaders {
		for _, h := range headers {
			if bytes.HasPrefix(content, h) {
				return mimeType
			}
		}
	}
	return ""
}
