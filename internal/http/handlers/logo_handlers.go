package handlers

import (
	"image"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/logo-gilding/internal/config"
	"github.com/phambaophuc/logo-gilding/internal/models"
	"github.com/phambaophuc/logo-gilding/internal/services/processor"
	"github.com/phambaophuc/logo-gilding/internal/services/storage"
	"go.uber.org/zap"
)

const (
	imageParamKey       = "image"
	imageURLParamKey    = "image_url"
	storagePathParamKey = "storage_path"
	thresholdParamKey   = "threshold"
	formatParamKey      = "format"
	qualityParamKey     = "quality"
)

type LogoHandler struct {
	processor *processor.ImageProcessor
	storage   *storage.StorageService
	logger    *zap.Logger
	config    *config.Config
}

func NewLogoHandler(
	processor *processor.ImageProcessor,
	storage *storage.StorageService,
	logger *zap.Logger,
	config *config.Config,
) *LogoHandler {
	return &LogoHandler{
		processor: processor,
		storage:   storage,
		logger:    logger,
		config:    config,
	}
}

// === MAIN API ENDPOINTS ===

// RecolorLogo gilds the dark pixels of the uploaded logo and clears the rest.
func (h *LogoHandler) RecolorLogo(c *gin.Context) {
	opts := h.config.Logo.RecolorOptions()

	if raw := c.PostForm(thresholdParamKey); raw != "" {
		threshold, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(c, http.StatusBadRequest, "invalid threshold: must be a number")
			return
		}
		opts.Threshold = threshold
	}
	if err := opts.Validate(); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	params := []string{"threshold=" + strconv.Itoa(opts.Threshold)}
	for _, s := range opts.Stops {
		params = append(params, s.String())
	}

	h.processAndRespond(c, models.OperationRecolor, params, func(img image.Image) (image.Image, models.CachedResult) {
		out, res := h.processor.Recolor(img, opts)
		return out, models.CachedResult{Width: res.Width, Height: res.Height}
	})
}

// CropLogo trims the uploaded image to its visible content. A fully
// transparent image answers 204 No Content.
func (h *LogoHandler) CropLogo(c *gin.Context) {
	h.processAndRespond(c, models.OperationCrop, nil, func(img image.Image) (image.Image, models.CachedResult) {
		out, res := h.processor.Crop(img)
		if res.Empty {
			return nil, models.CachedResult{Empty: true}
		}
		return out, models.CachedResult{
			Width:  res.Width(),
			Height: res.Height(),
			Bounds: res.Bounds,
		}
	})
}

// HealthCheck
func (h *LogoHandler) HealthCheck(c *gin.Context) {
	report := models.NewHealthCheck(h.storage.HealthCheck(c.Request.Context()), serviceOK)

	statusCode := http.StatusOK
	if !report.Healthy() {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: report.Healthy(),
		Data:    report,
	})
}
