package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phambaophuc/logo-gilding/internal/models"
	"github.com/phambaophuc/logo-gilding/internal/services/processor"
	"github.com/phambaophuc/logo-gilding/internal/services/storage"
	"github.com/phambaophuc/logo-gilding/pkg/utils"
	"go.uber.org/zap"
)

const (
	headerWidth      = "X-Image-Width"
	headerHeight     = "X-Image-Height"
	headerBounds     = "X-Crop-Bounds"
	headerCache      = "X-Cache"
	headerStorageURL = "X-Storage-URL"
)

var errNoSource = errors.New("no image provided: send an image file, image_url or storage_path")

type operationFunc func(img image.Image) (image.Image, models.CachedResult)

// === REQUEST PARSING ===

func (h *LogoHandler) readSource(c *gin.Context) ([]byte, string, error) {
	maxSize := h.config.Storage.MaxFileSize

	if file, header, err := c.Request.FormFile(imageParamKey); err == nil {
		defer file.Close()

		// One extra byte lets the validator see oversized uploads.
		data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
		if err != nil {
			return nil, "", fmt.Errorf("failed to read upload: %w", err)
		}
		return data, header.Filename, nil
	}

	if imageURL := c.PostForm(imageURLParamKey); imageURL != "" {
		data, _, err := utils.DownloadImage(c.Request.Context(), imageURL, maxSize)
		if err != nil {
			return nil, "", err
		}
		return data, path.Base(imageURL), nil
	}

	if storagePath := c.PostForm(storagePathParamKey); storagePath != "" {
		data, err := h.storage.Download(c.Request.Context(), storagePath)
		if err != nil {
			return nil, "", err
		}
		return data, path.Base(storagePath), nil
	}

	return nil, "", errNoSource
}

func (h *LogoHandler) parseQuality(value string) int {
	quality, err := strconv.Atoi(value)
	if err != nil || quality < 1 || quality > 100 {
		return processor.DefaultQuality
	}
	return quality
}

// === PROCESSING LOGIC ===

func (h *LogoHandler) processAndRespond(c *gin.Context, operation string, params []string, apply operationFunc) {
	ctx := c.Request.Context()

	data, filename, err := h.readSource(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.processor.ValidateImage(data, h.config.Storage.MaxFileSize); err != nil {
		h.respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid image: %v", err))
		return
	}

	format, err := processor.ParseFormat(c.PostForm(formatParamKey))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	quality := h.parseQuality(c.PostForm(qualityParamKey))

	params = append(params, "format="+format.String(), "quality="+strconv.Itoa(quality))
	cacheKey := storage.GenerateCacheKey(operation, data, params...)

	if cached, found := h.tryGetFromCache(c, cacheKey); found {
		c.Header(headerCache, "HIT")
		h.respondWithResult(c, operation, filename, cached)
		return
	}
	c.Header(headerCache, "MISS")

	img, err := processor.Decode(bytes.NewReader(data))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid image: %v", err))
		return
	}

	out, result := apply(img)
	result.Format = strings.ToLower(format.String())

	if !result.Empty {
		buffer := &bytes.Buffer{}
		if err := processor.Encode(buffer, out, format, quality); err != nil {
			h.logger.Error("Encoding failed", zap.String("operation", operation), zap.Error(err))
			h.respondError(c, http.StatusInternalServerError, "Failed to process image")
			return
		}
		result.Image = buffer.Bytes()
		result.URL = h.uploadToStorage(c, result.Image, filename, operation, format)
	}

	if err := h.storage.SetResult(ctx, cacheKey, &result); err != nil {
		h.logger.Warn("Failed to cache result", zap.String("cache_key", cacheKey), zap.Error(err))
	}

	h.respondWithResult(c, operation, filename, &result)
}

func (h *LogoHandler) tryGetFromCache(c *gin.Context, cacheKey string) (*models.CachedResult, bool) {
	cached, err := h.storage.GetResult(c.Request.Context(), cacheKey)
	if err != nil {
		h.logger.Warn("Cache lookup failed", zap.String("cache_key", cacheKey), zap.Error(err))
		return nil, false
	}
	if cached == nil {
		return nil, false
	}

	h.logger.Info("Cache hit", zap.String("cache_key", cacheKey))
	return cached, true
}

// === RESPONSE HANDLING ===

func (h *LogoHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

func (h *LogoHandler) respondWithResult(c *gin.Context, operation, filename string, result *models.CachedResult) {
	if result.Empty {
		h.logger.Info("Image is fully transparent", zap.String("operation", operation), zap.String("file", filename))
		c.Status(http.StatusNoContent)
		return
	}

	c.Header(headerWidth, strconv.Itoa(result.Width))
	c.Header(headerHeight, strconv.Itoa(result.Height))
	if operation == models.OperationCrop {
		b := result.Bounds
		c.Header(headerBounds, fmt.Sprintf("%d,%d,%d,%d", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	}
	if result.URL != "" {
		c.Header(headerStorageURL, result.URL)
	}

	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		c.JSON(http.StatusOK, models.APIResponse{
			Success: true,
			Data: models.ProcessedImage{
				ID:          uuid.New().String(),
				Operation:   operation,
				ProcessedAt: time.Now(),
				Width:       result.Width,
				Height:      result.Height,
				Format:      result.Format,
				URL:         result.URL,
				FileSize:    int64(len(result.Image)),
			},
		})
		return
	}

	c.Data(http.StatusOK, "image/"+result.Format, result.Image)
}

// === UTILITY METHODS ===

func serviceOK(status string) bool {
	return status == storage.StatusHealthy || status == storage.StatusNotConfigured
}

// === STORAGE OPERATIONS ===

func (h *LogoHandler) uploadToStorage(c *gin.Context, data []byte, filename, operation string, format imaging.Format) string {
	if !h.storage.UploadEnabled() {
		return ""
	}

	name := utils.GenerateFilename(filename, operation, strings.ToLower(format.String()))
	url, err := h.storage.Upload(c.Request.Context(), data, name, processor.ContentType(format))
	if err != nil {
		h.logger.Warn("Failed to upload to Storage", zap.Error(err))
		return ""
	}

	return url
}
