package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TriggerRunRequest is the body of POST /api/v1/runs.
type TriggerRunRequest struct {
	Region string `json:"region" binding:"required"`
}

func (s *Server) handleTriggerRun(c *gin.Context) {
	var req TriggerRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "region is required"})
		return
	}
	if _, err := s.cfg.Region(req.Region); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	runID, err := s.launcher.Launch(req.Region)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"run_id": runID,
		"region": req.Region,
		"status": "running",
	})
}

func (s *Server) handleGetRun(c *gin.Context) {
	status, err := s.launcher.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) handleCancelRun(c *gin.Context) {
	if !s.launcher.CancelRun(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found or already finished"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelling"})
}
