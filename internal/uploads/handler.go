package uploads

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/storage/object"
)

const maxUploadSize = 5 << 20 // 5MB

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// Handler stores resume images and links them onto the owning record.
type Handler struct {
	Resumes *resumes.Service
	Store   object.ObjectStore
	BaseURL string
}

// NewHandler constructs a Handler.
func NewHandler(resumeSvc *resumes.Service, store object.ObjectStore, baseURL string) *Handler {
	return &Handler{
		Resumes: resumeSvc,
		Store:   store,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/resumes/:id/upload-images", h.uploadImages)
}

func (h *Handler) uploadImages(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	thumbnail, err := c.FormFile("thumbnail")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read form", nil)
		return
	}
	profileImage, err := c.FormFile("profileImage")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read form", nil)
		return
	}
	if thumbnail == nil && profileImage == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "no files uploaded", nil)
		return
	}

	thumbnailLink, err := h.saveImage(c, userID, thumbnail)
	if err != nil {
		h.respondUploadError(c, err)
		return
	}
	previewLink, err := h.saveImage(c, userID, profileImage)
	if err != nil {
		h.respondUploadError(c, err)
		return
	}

	resume, err := h.Resumes.SetImages(c.Request.Context(), userID, c.Param("id"), thumbnailLink, previewLink)
	if err != nil {
		switch {
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update resume", err.Error())
		}
		return
	}

	respond.OK(c, gin.H{
		"message":           "Images uploaded successfully",
		"thumbnailLink":     resume.ThumbnailLink,
		"profilePreviewUrl": resume.ProfileInfo.ProfilePreviewURL,
	})
}

var errUnsupportedImage = errors.New("unsupported image type")

// saveImage stores one optional form file and returns its public link.
func (h *Handler) saveImage(c *gin.Context, userID string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "", errUnsupportedImage
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	key, _, _, err := h.Store.Save(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		return "", err
	}
	return h.BaseURL + "/uploads/" + key, nil
}

func (h *Handler) respondUploadError(c *gin.Context, err error) {
	if errors.Is(err, errUnsupportedImage) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "only jpeg, png, and webp images are allowed", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store image", err.Error())
}
