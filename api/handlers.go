package api

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"autoPallet/config"
	"autoPallet/metrics"
	"autoPallet/models"
	"autoPallet/packer"
	"autoPallet/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PackRequest struct {
	Pallet models.Pallet    `json:"pallet" binding:"required"`
	Boxes  []models.BoxType `json:"boxes" binding:"dive"`
}

type Handler struct {
	cfg config.Config
	log *slog.Logger
}

func NewHandler(cfg config.Config, log *slog.Logger) *Handler {
	return &Handler{cfg: cfg, log: log}
}

func isValidation(err error) bool {
	return errors.Is(err, models.ErrInvalidDimension) ||
		errors.Is(err, models.ErrNegativeQuantity) ||
		errors.Is(err, models.ErrEmptyBoxID) ||
		errors.Is(err, models.ErrDuplicateBoxID)
}

// search runs the packer and writes the error response itself when it fails.
func (h *Handler) search(c *gin.Context, pallet models.Pallet, boxes []models.BoxType) (models.Solution, bool) {
	start := time.Now()
	sol, err := packer.Search(c.Request.Context(), pallet, boxes, packer.Options{
		Concurrency:   h.cfg.Search.Concurrency,
		MaxCandidates: h.cfg.Search.MaxCandidates,
		Logger:        h.log,
	})
	metrics.ObserveSearch(sol, time.Since(start), err)
	if err != nil {
		status := http.StatusInternalServerError
		if isValidation(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return sol, false
	}

	if c.Query("verify") == "true" {
		if err := packer.Verify(sol.Oriented, sol.Result); err != nil {
			h.log.Error("verification failed", "run_id", sol.RunID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return sol, false
		}
	}
	return sol, true
}

func (h *Handler) HandlePack(c *gin.Context) {
	var req PackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sol, ok := h.search(c, req.Pallet, req.Boxes)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sol)
}

func (h *Handler) HandlePackChart(c *gin.Context) {
	var req PackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sol, ok := h.search(c, req.Pallet, req.Boxes)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := utils.RenderChart(&buf, sol); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func formFloat(c *gin.Context, key string) (float64, error) {
	v, err := strconv.ParseFloat(c.PostForm(key), 64)
	if err != nil {
		return 0, fmt.Errorf("form field %s: %w", key, err)
	}
	return v, nil
}

// HandlePackExcel 读取上传的箱型表 (multipart "file") 与托盘尺寸 w/h/d
func (h *Handler) HandlePackExcel(c *gin.Context) {
	var pallet models.Pallet
	var err error
	for key, dst := range map[string]*float64{"w": &pallet.Width, "h": &pallet.Height, "d": &pallet.Depth} {
		if *dst, err = formFloat(c, key); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	src, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	boxes, err := utils.ReadBoxCatalog(src, h.cfg.Excel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sol, ok := h.search(c, pallet, boxes)
	if !ok {
		return
	}
	if c.Query("output") != "xlsx" {
		c.JSON(http.StatusOK, sol)
		return
	}

	var buf bytes.Buffer
	if err := utils.WriteSolution(&buf, sol); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="pallet-%s.xlsx"`, sol.RunID))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
