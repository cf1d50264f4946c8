package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"path"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mueblessanmiguel/catalogo_api/internal/config"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
)

// MaxImageSize is the upload payload cap for product images.
const MaxImageSize = 5 * 1024 * 1024

// allowedImageTypes are the accepted product-image MIME types.
var allowedImageTypes = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/webp": "webp",
}

// StorageService uploads product images to S3-compatible object storage
// using AWS Signature V4.
type StorageService struct {
	bucket          string
	region          string
	accessKeyID     string
	secretAccessKey string
}

// NewStorageService creates a new storage service.
func NewStorageService(cfg *config.StorageConfig) (*StorageService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("storage config is nil")
	}
	return &StorageService{
		bucket:          cfg.Bucket,
		region:          cfg.Region,
		accessKeyID:     cfg.AccessKeyID,
		secretAccessKey: cfg.SecretAccessKey,
	}, nil
}

// UploadProductImage validates and uploads one product image, returning its
// public URL. Validation happens before any network call: only PNG, JPEG and
// WEBP are accepted, capped at 5 MB. productID may be empty for a product
// that has not been created yet; the image then lands under "new".
func (s *StorageService) UploadProductImage(ctx context.Context, productID, filename, contentType string, data []byte) (string, error) {
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return "", utils.ErrUnsupportedFileType
	}
	if len(data) > MaxImageSize {
		return "", utils.ErrFileTooLarge
	}

	folder := productID
	if folder == "" {
		folder = "new"
	}
	base := sanitizeFileName(strings.TrimSuffix(filename, path.Ext(filename)))
	if base == "" {
		base = "image"
	}
	key := fmt.Sprintf("products/%s/%d-%s.%s", folder, time.Now().UnixMilli(), base, ext)

	return s.uploadFile(ctx, key, data, contentType)
}

var nonFileChars = regexp.MustCompile(`[^a-z0-9]+`)

// sanitizeFileName lowercases the name, maps anything outside [a-z0-9] to a
// hyphen, collapses runs and trims the edges.
func sanitizeFileName(name string) string {
	return strings.Trim(nonFileChars.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

// uploadFile PUTs an object using AWS Signature V4. Without credentials the
// upload is skipped and the would-be public URL is returned, which keeps
// development environments working against placeholder links.
func (s *StorageService) uploadFile(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if s.accessKeyID == "" || s.secretAccessKey == "" {
		log.Warn().Str("key", key).Msg("Storage credentials not configured - skipping upload")
		return s.ObjectURL(key), nil
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)

	req, err := http.NewRequestWithContext(ctx, "PUT", url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	now := time.Now().UTC()
	amzDate := now.Format("20060102T150405Z")
	dateStamp := now.Format("20060102")
	payloadHash := sha256Hex(data)

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Length", fmt.Sprintf("%d", len(data)))
	req.Header.Set("Host", fmt.Sprintf("%s.s3.%s.amazonaws.com", s.bucket, s.region))
	req.Header.Set("X-Amz-Date", amzDate)
	req.Header.Set("X-Amz-Content-Sha256", payloadHash)

	authorization := s.signRequest(req, payloadHash, amzDate, dateStamp)
	req.Header.Set("Authorization", authorization)

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to upload image")
		return "", fmt.Errorf("failed to upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		log.Error().
			Str("key", key).
			Int("status", resp.StatusCode).
			Str("response", string(body)).
			Msg("Image upload failed")
		return "", fmt.Errorf("image upload failed: %s", string(body))
	}

	log.Info().Str("key", key).Msg("Image uploaded")
	return s.ObjectURL(key), nil
}

// signRequest creates the AWS Signature V4 authorization header.
func (s *StorageService) signRequest(req *http.Request, payloadHash, amzDate, dateStamp string) string {
	service := "s3"

	canonicalURI := req.URL.Path
	if canonicalURI == "" {
		canonicalURI = "/"
	}
	canonicalQueryString := ""

	signedHeaders := []string{"content-type", "host", "x-amz-content-sha256", "x-amz-date"}
	sort.Strings(signedHeaders)

	var canonicalHeaders strings.Builder
	for _, h := range signedHeaders {
		canonicalHeaders.WriteString(strings.ToLower(h))
		canonicalHeaders.WriteString(":")
		canonicalHeaders.WriteString(strings.TrimSpace(req.Header.Get(h)))
		canonicalHeaders.WriteString("\n")
	}

	signedHeadersStr := strings.Join(signedHeaders, ";")

	canonicalRequest := fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n%s",
		req.Method,
		canonicalURI,
		canonicalQueryString,
		canonicalHeaders.String(),
		signedHeadersStr,
		payloadHash,
	)

	algorithm := "AWS4-HMAC-SHA256"
	credentialScope := fmt.Sprintf("%s/%s/%s/aws4_request", dateStamp, s.region, service)
	stringToSign := fmt.Sprintf("%s\n%s\n%s\n%s",
		algorithm,
		amzDate,
		credentialScope,
		sha256Hex([]byte(canonicalRequest)),
	)

	kDate := hmacSHA256([]byte("AWS4"+s.secretAccessKey), []byte(dateStamp))
	kRegion := hmacSHA256(kDate, []byte(s.region))
	kService := hmacSHA256(kRegion, []byte(service))
	kSigning := hmacSHA256(kService, []byte("aws4_request"))

	signature := hex.EncodeToString(hmacSHA256(kSigning, []byte(stringToSign)))

	return fmt.Sprintf("%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		algorithm,
		s.accessKeyID,
		credentialScope,
		signedHeadersStr,
		signature,
	)
}

// ObjectURL returns the public URL for a stored object.
func (s *StorageService) ObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// sha256Hex computes a SHA256 hash and returns the hex string.
func sha256Hex(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// hmacSHA256 computes HMAC-SHA256.
func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}
