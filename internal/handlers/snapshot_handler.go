package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/services"
)

// SnapshotHandler handles whole-state export and import.
type SnapshotHandler struct {
	snapshots services.SnapshotServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshots services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots}
}

// Export downloads the full state as financial_data.json.
// @Summary     Export all data
// @Description Download the whole aggregate state as a JSON file
// @Tags        snapshot
// @Produce     json
// @Success     200 {object} services.Snapshot
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /export [get]
func (h *SnapshotHandler) Export(c *gin.Context) {
	snapshot, err := h.snapshots.Export()
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ExportFilename))
	c.Data(http.StatusOK, "application/json", data)
}

// Import replaces the full state from an uploaded snapshot.
// @Summary     Import data
// @Description Replace the whole aggregate state from a snapshot file; a malformed file leaves existing data untouched
// @Tags        snapshot
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]string "Imported"
// @Failure     400 {object} ErrorResponse "Malformed snapshot"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /import [post]
func (h *SnapshotHandler) Import(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrMalformedSnapshot, err))
		return
	}

	if err := h.snapshots.Import(raw); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data imported"})
}
