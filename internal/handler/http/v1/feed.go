package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_response_system/internal/auth"
	"github.com/shenikar/emergency_response_system/internal/feed"
	"github.com/sirupsen/logrus"
)

// @Summary Stream the live incident feed
// @Description Server-sent event stream of full-replace snapshots. Each event carries the complete current set of live incidents visible to the subscriber; the client discards its previous state entirely on every event.
// @Tags Feed
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /feed [get]
func (h *Handler) streamFeed(c *gin.Context) {
	log := h.logger.WithField("method", "streamFeed")

	subjectID, role, ok := subjectFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
		return
	}

	viewer := feed.Viewer{Role: feed.RoleReporter, ReporterID: subjectID}
	if role == auth.RoleHospital {
		viewer = feed.Viewer{Role: feed.RoleHospital, HospitalID: subjectID}
	}

	h.stream(c, log.WithField("role", string(viewer.Role)), viewer)
}

// @Summary Stream the full live incident feed
// @Description Server-sent event stream of full-replace snapshots covering every live incident. Requires admin API key.
// @Tags Admin
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/feed [get]
func (h *Handler) streamAdminFeed(c *gin.Context) {
	log := h.logger.WithField("method", "streamAdminFeed")
	h.stream(c, log, feed.Viewer{Role: feed.RoleAdmin})
}

func (h *Handler) stream(c *gin.Context, log *logrus.Entry, viewer feed.Viewer) {
	snapshots, cancel, err := h.hub.Subscribe(c.Request.Context(), viewer)
	if err != nil {
		log.WithError(err).Error("Failed to subscribe to live feed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case snapshot, ok := <-snapshots:
			if !ok {
				return false
			}
			c.SSEvent("snapshot", ModelsToIncidentResponses(snapshot))
			return true
		}
	})
}
