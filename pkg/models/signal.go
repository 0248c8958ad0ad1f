package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NodeType identifies a signal variant. The set is closed: the projector and
// the dedup engine switch on it exhaustively.
type NodeType string

const (
	NodeGathering NodeType = "gathering"
	NodeAid       NodeType = "aid"
	NodeNeed      NodeType = "need"
	NodeNotice    NodeType = "notice"
	NodeTension   NodeType = "tension"
)

// AllNodeTypes lists every signal variant in a stable order.
func AllNodeTypes() []NodeType {
	return []NodeType{NodeGathering, NodeAid, NodeNeed, NodeNotice, NodeTension}
}

// Valid reports whether t is one of the five known variants.
func (t NodeType) Valid() bool {
	switch t {
	case NodeGathering, NodeAid, NodeNeed, NodeNotice, NodeTension:
		return true
	}
	return false
}

// Sensitivity grades how carefully a signal's location must be handled.
// Coordinates are snapped to a coarser grid as sensitivity increases before
// they leave the process.
type Sensitivity string

const (
	SensitivityGeneral   Sensitivity = "general"
	SensitivityElevated  Sensitivity = "elevated"
	SensitivitySensitive Sensitivity = "sensitive"
)

// Severity applies to Notice signals only.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Meta is the record shared by every signal variant.
type Meta struct {
	ID                  uuid.UUID   `json:"id"`
	Title               string      `json:"title"`
	Summary             string      `json:"summary"`
	Sensitivity         Sensitivity `json:"sensitivity"`
	Confidence          float64     `json:"confidence"`
	Freshness           float64     `json:"freshness"`
	CorroborationCount  int         `json:"corroboration_count"`
	Location            *GeoPoint   `json:"location"`
	LocationName        string      `json:"location_name"`
	SourceURL           string      `json:"source_url"`
	ExtractedAt         time.Time   `json:"extracted_at"`
	LastConfirmedActive time.Time   `json:"last_confirmed_active"`
	AudienceRoles       []string    `json:"audience_roles"`
	SourceDiversity     int         `json:"source_diversity"`
	ExternalRatio       float64     `json:"external_ratio"`
	CauseHeat           float64     `json:"cause_heat"`
	MentionedActors     []string    `json:"mentioned_actors"`
}

// GatheringFields describe a scheduled or ongoing event.
type GatheringFields struct {
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	ActionURL   string     `json:"action_url"`
	Organizer   string     `json:"organizer"`
	IsRecurring bool       `json:"is_recurring"`
}

// AidFields describe an offered resource or service.
type AidFields struct {
	ActionURL    string `json:"action_url"`
	Availability string `json:"availability"`
	IsOngoing    bool   `json:"is_ongoing"`
}

// NeedFields describe an ask or unmet demand.
type NeedFields struct {
	ActionURL string `json:"action_url"`
}

// NoticeFields describe an informational signal.
type NoticeFields struct {
	Severity Severity `json:"severity"`
}

// TensionFields describe a problem or conflict.
type TensionFields struct {
	Category      string `json:"category"`
	WhatWouldHelp string `json:"what_would_help"`
}

// SignalNode is the closed tagged union of signal variants: a shared Meta
// plus exactly one populated variant matching Type.
type SignalNode struct {
	Type      NodeType         `json:"type"`
	Meta      Meta             `json:"meta"`
	Gathering *GatheringFields `json:"gathering,omitempty"`
	Aid       *AidFields       `json:"aid,omitempty"`
	Need      *NeedFields      `json:"need,omitempty"`
	Notice    *NoticeFields    `json:"notice,omitempty"`
	Tension   *TensionFields   `json:"tension,omitempty"`
}

// TitleKey returns the case-folded title used by the exact-title dedup layer.
func (n *SignalNode) TitleKey() string {
	return strings.ToLower(strings.TrimSpace(n.Meta.Title))
}

// Validate checks the union is well-formed: a known type, its variant fields
// present, and the shared meta within bounds.
func (n *SignalNode) Validate() error {
	if !n.Type.Valid() {
		return fmt.Errorf("unknown node type %q", n.Type)
	}
	if strings.TrimSpace(n.Meta.Title) == "" {
		return fmt.Errorf("signal %s has empty title", n.Meta.ID)
	}
	if n.Meta.Confidence < 0 || n.Meta.Confidence > 1 {
		return fmt.Errorf("signal %q confidence %v out of [0,1]", n.Meta.Title, n.Meta.Confidence)
	}
	if n.Meta.Freshness < 0 || n.Meta.Freshness > 1 {
		return fmt.Errorf("signal %q freshness %v out of [0,1]", n.Meta.Title, n.Meta.Freshness)
	}
	if n.Meta.Location != nil {
		if err := n.Meta.Location.Validate(); err != nil {
			return fmt.Errorf("signal %q location: %w", n.Meta.Title, err)
		}
	}
	var variants int
	if n.Gathering != nil {
		variants++
	}
	if n.Aid != nil {
		variants++
	}
	if n.Need != nil {
		variants++
	}
	if n.Notice != nil {
		variants++
	}
	if n.Tension != nil {
		variants++
	}
	if variants != 1 {
		return fmt.Errorf("signal %q has %d variant records, want exactly 1", n.Meta.Title, variants)
	}
	switch n.Type {
	case NodeGathering:
		if n.Gathering == nil {
			return fmt.Errorf("signal %q typed gathering without gathering fields", n.Meta.Title)
		}
	case NodeAid:
		if n.Aid == nil {
			return fmt.Errorf("signal %q typed aid without aid fields", n.Meta.Title)
		}
	case NodeNeed:
		if n.Need == nil {
			return fmt.Errorf("signal %q typed need without need fields", n.Meta.Title)
		}
	case NodeNotice:
		if n.Notice == nil {
			return fmt.Errorf("signal %q typed notice without notice fields", n.Meta.Title)
		}
	case NodeTension:
		if n.Tension == nil {
			return fmt.Errorf("signal %q typed tension without tension fields", n.Meta.Title)
		}
	}
	return nil
}

// EmbeddingText returns the text the dedup engine embeds for similarity
// comparison. Title and summary carry the semantic identity of the signal;
// location name disambiguates same-titled events in different places.
func (n *SignalNode) EmbeddingText() string {
	parts := []string{n.Meta.Title, n.Meta.Summary}
	if n.Meta.LocationName != "" {
		parts = append(parts, n.Meta.LocationName)
	}
	return strings.Join(parts, "\n")
}

// Evidence is one observation of a signal: a (source URL, content hash)
// pair with retrieval context. Evidence rows are immutable once created.
type Evidence struct {
	ID          uuid.UUID `json:"id"`
	SignalID    uuid.UUID `json:"signal_id"`
	SourceURL   string    `json:"source_url"`
	ContentHash string    `json:"content_hash"`
	RetrievedAt time.Time `json:"retrieved_at"`
	Snippet     string    `json:"snippet"`
	Relevance   float64   `json:"relevance"`
	Confidence  float64   `json:"confidence"`
	ChannelType string    `json:"channel_type"`
}
