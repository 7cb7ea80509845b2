package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dwiprast/yt-trending/internal/common/config"
	"github.com/dwiprast/yt-trending/internal/store"
	"github.com/dwiprast/yt-trending/internal/youtube"
	"github.com/dwiprast/yt-trending/pkg/models"
)

// TrendingFetcher is the slice of the YouTube client the panel needs.
type TrendingFetcher interface {
	Trending(ctx context.Context, region string, maxResults int) (models.TrendingResponse, error)
}

type Handler struct {
	ytCfg *config.YouTubeConfig
	log   *logrus.Logger
	yt    TrendingFetcher
	store *store.Store
}

func New(ytCfg *config.YouTubeConfig, log *logrus.Logger, yt TrendingFetcher, st *store.Store) *Handler {
	return &Handler{
		ytCfg: ytCfg,
		log:   log,
		yt:    yt,
		store: st,
	}
}

// RegisterRoutes registers all the routes for the web panel
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/trending", h.TrendingHandler())
		api.GET("/snapshots", h.ListSnapshotsHandler())
		api.GET("/snapshots/:id", h.GetSnapshotHandler())
	}
}

// TrendingHandler proxies a live trending fetch
func (h *Handler) TrendingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		region := c.DefaultQuery("region", h.ytCfg.Region)
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.ytCfg.MaxResults)))
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "limit must be a positive integer",
			})
			return
		}

		data, err := h.yt.Trending(c.Request.Context(), region, limit)
		if err != nil {
			var apiErr *youtube.APIError
			if errors.As(err, &apiErr) {
				h.log.WithError(err).Error("YouTube API rejected trending request")
				c.JSON(http.StatusBadGateway, gin.H{
					"error":           "youtube api error",
					"upstream_status": apiErr.Status,
				})
				return
			}
			h.log.WithError(err).Error("Failed to fetch trending videos")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to fetch trending videos",
			})
			return
		}

		c.JSON(http.StatusOK, data)
	}
}

// ListSnapshotsHandler returns archive metadata, newest first
func (h *Handler) ListSnapshotsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshots, err := h.store.ListSnapshots(c.Request.Context())
		if err != nil {
			h.log.WithError(err).Error("Failed to list snapshots")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to list snapshots",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"total":     len(snapshots),
			"snapshots": snapshots,
		})
	}
}

// GetSnapshotHandler returns one archived response
func (h *Handler) GetSnapshotHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := h.store.GetSnapshot(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrSnapshotNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"error": "snapshot not found",
				})
				return
			}
			h.log.WithError(err).Error("Failed to load snapshot")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to load snapshot",
			})
			return
		}
		c.JSON(http.StatusOK, data)
	}
}
