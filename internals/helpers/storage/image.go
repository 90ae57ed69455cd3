// file: internals/helpers/storage/image.go
package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// images wider than this get resized before encoding
const maxImageWidth = 1600

// webp quality; hosted storage bandwidth is the constraint, not fidelity
const webpQuality = 80

// UploadImageWebP decodes an uploaded image, resizes it down to
// maxImageWidth when needed, re-encodes it as WebP and uploads it.
// Returns the public URL.
func UploadImageWebP(bucket, folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxUploadSize {
		return "", fmt.Errorf("image exceeds %dMB limit", MaxUploadSize/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := GenerateUniqueKey(folder, trimExt(fileHeader.Filename)+".webp")
	if err := Upload(bucket, key, "image/webp", buf); err != nil {
		return "", err
	}
	return PublicURL(bucket, key), nil
}
