// file: internals/helpers/storage/storage.go
package storage

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"gerejaku_backend/internals/configs"
)

// guard against oversized uploads before anything hits the wire
const MaxUploadSize = int64(10 * 1024 * 1024)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeChars.ReplaceAllString(filename, "_")
}

// GenerateUniqueKey builds a collision-resistant object key:
// folder/yyyymmdd-uuid-sanitizedname. Original filenames are never
// trusted for uniqueness.
func GenerateUniqueKey(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuidStr, sanitizeFilename(originalFilename))
}

// PublicURL returns the public object URL for an uploaded key.
func PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		configs.SupabaseProjectURL, bucket, url.PathEscape(key))
}

// KeyFromPublicURL recovers the object key from a URL built by
// PublicURL. ok is false for foreign or malformed URLs, so callers can
// safely skip cleanup of objects this service does not own.
func KeyFromPublicURL(bucket, publicURL string) (string, bool) {
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", configs.SupabaseProjectURL, bucket)
	if configs.SupabaseProjectURL == "" || !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	key, err := url.PathUnescape(strings.TrimPrefix(publicURL, prefix))
	if err != nil || key == "" {
		return "", false
	}
	return key, true
}

// Upload PUTs an object into the hosted storage bucket.
func Upload(bucket, key, contentType string, data *bytes.Buffer) error {
	if configs.SupabaseProjectURL == "" || configs.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_PROJECT_URL or SUPABASE_SERVICE_ROLE_KEY is not set")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", configs.SupabaseProjectURL, bucket, key)

	req, err := http.NewRequest(http.MethodPut, endpoint, data)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+configs.SupabaseServiceKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("send upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[ERROR] upload failed bucket=%s key=%s: %s", bucket, key, string(body))
		return fmt.Errorf("upload failed status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// Delete removes an object; used when a record drops its attachment.
func Delete(bucket, key string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", configs.SupabaseProjectURL, bucket, key)

	req, err := http.NewRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+configs.SupabaseServiceKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete failed status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// UploadFile streams a multipart file (audio, pdf, slides) as-is.
// Returns the public URL.
func UploadFile(bucket, folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxUploadSize {
		return "", fmt.Errorf("file exceeds %dMB limit", MaxUploadSize/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := GenerateUniqueKey(folder, fileHeader.Filename)
	if err := Upload(bucket, key, contentType, buf); err != nil {
		return "", err
	}
	return PublicURL(bucket, key), nil
}

// trimExt drops the extension so image keys can carry .webp instead.
func trimExt(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}
