// Package graph owns all access to the persisted signal graph: the
// projector applies world events as deterministic mutations, the reader
// serves dedup and scheduling queries, and replay rebuilds the graph from
// the event log.
package graph

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fourthplaces/rootsignal/ent"
	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/google/uuid"
)

// Signal is the read model handed to dedup and synthesis: enough of the
// stored row to classify matches without loading edges.
type Signal struct {
	ID          uuid.UUID
	Type        models.NodeType
	Title       string
	TitleKey    string
	Summary     string
	Sensitivity models.Sensitivity
	SourceURL   string
	Location    *models.GeoPoint
	Embedding   []float32
	ExtractedAt time.Time
	ExpiredAt   *time.Time
	Severity    *models.Severity
	Variant     map[string]interface{}
}

func signalFromRow(row *ent.Signal) (*Signal, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("signal %s has malformed id: %w", row.ID, err)
	}
	s := &Signal{
		ID:          id,
		Type:        models.NodeType(row.NodeType),
		Title:       row.Title,
		TitleKey:    row.TitleKey,
		Summary:     row.Summary,
		Sensitivity: models.Sensitivity(row.Sensitivity),
		SourceURL:   row.SourceURL,
		Embedding:   row.Embedding,
		ExtractedAt: row.ExtractedAt,
		ExpiredAt:   row.ExpiredAt,
		Variant:     row.Variant,
	}
	if row.Lat != nil && row.Lng != nil {
		p := models.GeoPoint{Lat: *row.Lat, Lng: *row.Lng}
		if row.GeoPrecision != nil {
			p.Precision = models.Precision(*row.GeoPrecision)
		}
		s.Location = &p
	}
	if row.Severity != nil {
		sev := models.Severity(*row.Severity)
		s.Severity = &sev
	}
	return s, nil
}

// variantMap serializes a variant struct into the JSON map stored on the
// signal row.
func variantMap(v any) (map[string]interface{}, error) {
	if v == nil {
		return map[string]interface{}{}, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize variant: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to reshape variant: %w", err)
	}
	return m, nil
}

func variantOf(n *models.SignalNode) any {
	switch n.Type {
	case models.NodeGathering:
		return n.Gathering
	case models.NodeAid:
		return n.Aid
	case models.NodeNeed:
		return n.Need
	case models.NodeNotice:
		return n.Notice
	case models.NodeTension:
		return n.Tension
	}
	return nil
}
