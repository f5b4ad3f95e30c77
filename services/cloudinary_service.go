package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"devsfusion-backend/config"
)

// uploadNamespace is the root folder every asset lives under.
const uploadNamespace = "devsfusion"

// UploadFolders maps the API path segment onto the Cloudinary subfolder.
var UploadFolders = map[string]string{
	"project":     "projects",
	"service":     "services",
	"testimonial": "testimonials",
	"general":     "general",
}

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ImageStore abstracts the hosted image service so handlers can be
// tested with a fake.
type ImageStore interface {
	Upload(ctx context.Context, file io.Reader, folder string) (*UploadResult, error)
	DeleteByURL(ctx context.Context, imageURL, publicID string) DeleteResult
}

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cfg *config.Config) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryService{cld: cld}, nil
}

// Upload pushes the file under devsfusion/<folder> with a size-limiting
// transformation applied at upload time.
func (s *CloudinaryService) Upload(ctx context.Context, file io.Reader, folder string) (*UploadResult, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         uploadNamespace + "/" + folder,
		Transformation: "c_limit,w_1200,h_800",
		AllowedFormats: api.CldAPIArray{"jpg", "jpeg", "png", "gif", "webp", "svg"},
	})
	if err != nil {
		return nil, err
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return &UploadResult{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

// DeleteByURL removes an asset. An explicit publicID wins; otherwise the
// id is derived from the delivery URL. Remote failures come back as a
// structured failure, never an error.
func (s *CloudinaryService) DeleteByURL(ctx context.Context, imageURL, publicID string) DeleteResult {
	if publicID == "" {
		derived, ok := PublicIDFromURL(imageURL)
		if !ok {
			return DeleteResult{Success: false, Message: "Not a Cloudinary image"}
		}
		publicID = derived
	}

	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		log.Printf("Error deleting image %s from Cloudinary: %v", publicID, err)
		return DeleteResult{Success: false, Message: "Failed to delete image"}
	}
	if resp.Result != "ok" {
		return DeleteResult{Success: false, Message: fmt.Sprintf("Failed to delete image: %s", resp.Result)}
	}
	return DeleteResult{Success: true}
}

var versionSegment = regexp.MustCompile(`^v\d+$`)

// PublicIDFromURL derives the stored public id from a Cloudinary delivery
// URL. It walks the path after the "upload" segment, skipping the
// version marker and any transformation segment, and strips the file
// extension. Returns false for URLs that do not belong to Cloudinary.
func PublicIDFromURL(imageURL string) (string, bool) {
	if imageURL == "" || !strings.Contains(imageURL, "cloudinary") {
		return "", false
	}

	u, err := url.Parse(imageURL)
	if err != nil {
		return "", false
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	start := -1
	for i, seg := range segments {
		if seg == "upload" {
			start = i + 1
			break
		}
	}
	if start < 0 || start >= len(segments) {
		return "", false
	}

	rest := segments[start:]
	for len(rest) > 0 && (versionSegment.MatchString(rest[0]) || strings.Contains(rest[0], ",")) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return "", false
	}

	// Strip the extension off the final segment.
	last := rest[len(rest)-1]
	if idx := strings.LastIndex(last, "."); idx > 0 {
		rest[len(rest)-1] = last[:idx]
	}

	publicID := strings.Join(rest, "/")
	if !strings.HasPrefix(publicID, uploadNamespace+"/") {
		publicID = uploadNamespace + "/" + publicID
	}
	return publicID, true
}
