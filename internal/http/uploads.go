package http

import (
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedUploadExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".gif":  {},
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

const presignTTL = 15 * time.Minute

// uploadFile stores a multipart document under a generated object key.
// Only image and document extensions are accepted.
func (h *Handler) uploadFile(c *gin.Context) {
	if h.storage == nil {
		fail(c, http.StatusServiceUnavailable, "File storage is not configured")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	if file.Size > h.maxFileSize {
		fail(c, http.StatusBadRequest, fmt.Sprintf("File too large, limit is %d bytes", h.maxFileSize))
		return
	}

	ext := strings.ToLower(path.Ext(file.Filename))
	if _, ok := allowedUploadExtensions[ext]; !ok {
		fail(c, http.StatusBadRequest, "Only images and documents are allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer src.Close()

	key := path.Join(h.keyPrefix, uuid.NewString()+ext)
	location, err := h.storage.UploadObject(c.Request.Context(), h.bucket, key, file.Header.Get("Content-Type"), src)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to store file")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "File uploaded successfully",
		"data": gin.H{
			"key":      key,
			"location": location,
			"fileName": file.Filename,
			"size":     file.Size,
		},
	})
}

// listUploads enumerates stored objects, optionally narrowed by a key prefix.
func (h *Handler) listUploads(c *gin.Context) {
	if h.storage == nil {
		fail(c, http.StatusServiceUnavailable, "File storage is not configured")
		return
	}

	prefix := c.Query("prefix")
	if prefix == "" {
		prefix = h.keyPrefix
	}

	objects, err := h.storage.ListObjects(c.Request.Context(), h.bucket, prefix)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to list files")
		return
	}

	files := make([]gin.H, 0, len(objects))
	for _, obj := range objects {
		entry := gin.H{"key": obj.Key, "size": obj.Size}
		if obj.LastModified != nil {
			entry["lastModified"] = obj.LastModified.UTC().Format(time.RFC3339)
		}
		files = append(files, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    files,
	})
}

// deleteUpload removes a stored object.
func (h *Handler) deleteUpload(c *gin.Context) {
	if h.storage == nil {
		fail(c, http.StatusServiceUnavailable, "File storage is not configured")
		return
	}

	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		fail(c, http.StatusBadRequest, "Object key is required")
		return
	}

	if err := h.storage.DeleteObject(c.Request.Context(), h.bucket, key); err != nil {
		fail(c, http.StatusInternalServerError, "Failed to delete file")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "File deleted successfully",
	})
}

// getUploadURL returns a short-lived download URL for a stored object.
func (h *Handler) getUploadURL(c *gin.Context) {
	if h.storage == nil {
		fail(c, http.StatusServiceUnavailable, "File storage is not configured")
		return
	}

	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		fail(c, http.StatusBadRequest, "Object key is required")
		return
	}

	url, err := h.storage.GetObjectURL(c.Request.Context(), h.bucket, key, presignTTL)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to generate download URL")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"key": key, "url": url},
	})
}
