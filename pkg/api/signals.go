package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fourthplaces/rootsignal/pkg/graph"
	"github.com/fourthplaces/rootsignal/pkg/models"
)

// SignalView is the operator-facing shape of a signal. Coordinates are
// fuzzed by sensitivity before serialization; raw points never leave the
// process.
type SignalView struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Sensitivity  string   `json:"sensitivity"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	GeoPrecision string   `json:"geo_precision,omitempty"`
	SourceURL    string   `json:"source_url"`
	Severity     string   `json:"severity,omitempty"`
	Expired      bool     `json:"expired"`
}

func (s *Server) handleListSignals(c *gin.Context) {
	region := c.Param("region")
	if _, err := s.cfg.Region(region); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	reader := graph.NewReader(s.dbClient.Client, region)
	signals, err := reader.LiveSignalsOfTypes(c.Request.Context(), models.AllNodeTypes()...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list signals"})
		return
	}

	views := make([]SignalView, 0, len(signals))
	for _, sig := range signals {
		views = append(views, toSignalView(sig))
	}
	c.JSON(http.StatusOK, gin.H{"region": region, "signals": views})
}

func toSignalView(sig *graph.Signal) SignalView {
	view := SignalView{
		ID:          sig.ID.String(),
		Type:        string(sig.Type),
		Title:       sig.Title,
		Summary:     sig.Summary,
		Sensitivity: string(sig.Sensitivity),
		SourceURL:   sig.SourceURL,
		Expired:     sig.ExpiredAt != nil,
	}
	if sig.Location != nil {
		fuzzed := sig.Location.Fuzz(sig.Sensitivity)
		view.Lat = &fuzzed.Lat
		view.Lng = &fuzzed.Lng
		view.GeoPrecision = string(fuzzed.Precision)
	}
	if sig.Severity != nil {
		view.Severity = string(*sig.Severity)
	}
	return view
}
