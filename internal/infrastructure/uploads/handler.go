// Package uploads is the multipart upload collaborator: it parses form
// submissions, writes uploaded files beneath the upload directory and
// reports where they were exposed.
package uploads

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/media"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// StoredFile describes one uploaded file after it landed on disk
type StoredFile struct {
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// ContestEntry holds the parsed fields and stored files of one
// vacation-photo submission. Not retained after the request completes.
type ContestEntry struct {
	Fields map[string]string
	Files  []StoredFile
}

// Handler writes uploads to disk and answers the jQuery-File-Upload
// JSON protocol for the /upload prefix.
type Handler struct {
	baseDir     string
	baseURL     string
	thumbnailer *media.Thumbnailer
	logger      *logging.ChanneledLogger
}

// NewHandler creates an upload handler rooted at baseDir, exposing stored
// files under baseURL.
func NewHandler(baseDir, baseURL string, thumbnailer *media.Thumbnailer, logger *logging.ChanneledLogger) *Handler {
	return &Handler{
		baseDir:     baseDir,
		baseURL:     baseURL,
		thumbnailer: thumbnailer,
		logger:      logger,
	}
}

// BaseDir returns the directory uploads are written under
func (h *Handler) BaseDir() string {
	return h.baseDir
}

// HandleUpload serves POST /upload/*. Each burst of files lands in a
// timestamp-named directory exposed at the matching timestamp-named
// URL prefix.
func (h *Handler) HandleUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		if h.logger != nil {
			h.logger.Upload().Warn("Multipart parse failed", "path", c.Request.URL.Path, "error", err.Error())
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart payload"})
		return
	}

	stamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	destDir := filepath.Join(h.baseDir, stamp)
	destURL := path.Join(h.baseURL, stamp)

	files, err := h.storeFiles(c, form, destDir, destURL)
	if err != nil {
		if h.logger != nil {
			h.logger.Upload().Error("Failed to store uploaded files", "dir", destDir, "error", err.Error())
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store uploaded files"})
		return
	}

	if h.logger != nil {
		h.logger.Upload().Info("Upload stored", "dir", destDir, "fileCount", len(files))
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

// ParseContestEntry parses a vacation-photo submission, storing its files
// under the year/month-scoped contest directory. File size and type
// validation is out of scope here.
func (h *Handler) ParseContestEntry(c *gin.Context, year, month string) (*ContestEntry, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("failed to parse contest entry: %w", err)
	}

	destDir := filepath.Join(h.baseDir, "contest", year, month)
	destURL := path.Join(h.baseURL, "contest", year, month)

	files, err := h.storeFiles(c, form, destDir, destURL)
	if err != nil {
		return nil, fmt.Errorf("failed to store contest files: %w", err)
	}

	fields := make(map[string]string, len(form.Value))
	for name, values := range form.Value {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}

	return &ContestEntry{Fields: fields, Files: files}, nil
}

// storeFiles writes every file in the form to destDir and builds the
// exposed metadata. Thumbnails are best-effort; a failed thumbnail is
// logged and the upload still succeeds.
func (h *Handler) storeFiles(c *gin.Context, form *multipart.Form, destDir, destURL string) ([]StoredFile, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	stored := make([]StoredFile, 0)
	for _, headers := range form.File {
		for _, header := range headers {
			name := filepath.Base(header.Filename)
			if name == "" || name == "." || name == string(filepath.Separator) {
				continue
			}

			dst := filepath.Join(destDir, name)
			if err := c.SaveUploadedFile(header, dst); err != nil {
				return nil, fmt.Errorf("failed to save %s: %w", name, err)
			}

			file := StoredFile{
				Name: name,
				Size: header.Size,
				URL:  path.Join(destURL, name),
			}

			if h.thumbnailer != nil && media.IsImage(name) {
				if thumbPath, err := h.thumbnailer.CreateThumbnail(dst); err != nil {
					if h.logger != nil {
						h.logger.Upload().Warn("Thumbnail generation failed", "file", name, "error", err.Error())
					}
				} else {
					file.ThumbnailURL = path.Join(destURL, filepath.Base(thumbPath))
				}
			}

			stored = append(stored, file)
		}
	}

	return stored, nil
}
