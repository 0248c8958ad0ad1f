// Package extract turns fetched content into typed signal batches via the
// LLM's structured-output path.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fourthplaces/rootsignal/pkg/llm"
	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/google/uuid"
)

// maxContentRunes bounds how much page text reaches the model; longer pages
// are truncated from the tail, where boilerplate lives.
const maxContentRunes = 24000

// ExtractedNode is one signal as the model reports it. Nullable fields are
// pointers so the derived schema marks them nullable while keeping every
// property required.
type ExtractedNode struct {
	Type          string   `json:"type" enum:"gathering,aid,need,notice,tension" desc:"Signal variant"`
	Title         string   `json:"title" desc:"Short, specific title"`
	Summary       string   `json:"summary" desc:"Two or three sentences of what, who, where"`
	Sensitivity   string   `json:"sensitivity" enum:"general,elevated,sensitive"`
	Confidence    float64  `json:"confidence" desc:"0..1 confidence the signal is real and local"`
	IsFirsthand   bool     `json:"is_firsthand" desc:"True when the page itself is the origin, not a re-report"`
	LocationName  *string  `json:"location_name"`
	Lat           *float64 `json:"lat"`
	Lng           *float64 `json:"lng"`
	GeoPrecision  *string  `json:"geo_precision" enum:"exact,neighborhood,city"`
	AudienceRoles []string `json:"audience_roles" desc:"Who this is for: residents, volunteers, organizers, officials"`

	// Gathering
	StartsAt    *string `json:"starts_at" desc:"RFC3339 start when type=gathering"`
	EndsAt      *string `json:"ends_at"`
	Organizer   *string `json:"organizer"`
	IsRecurring *bool   `json:"is_recurring"`
	// Gathering / aid / need
	ActionURL *string `json:"action_url"`
	// Aid
	Availability *string `json:"availability"`
	IsOngoing    *bool   `json:"is_ongoing"`
	// Notice
	Severity *string `json:"severity" enum:"info,warning,critical"`
	// Tension
	Category      *string `json:"category"`
	WhatWouldHelp *string `json:"what_would_help"`

	MentionedActors []string `json:"mentioned_actors"`
}

// ActorRef names an actor observed during extraction.
type ActorRef struct {
	Name string  `json:"name"`
	Kind string  `json:"kind" enum:"organization,person,agency"`
	URL  *string `json:"url"`
}

// Result is the full structured extraction from one piece of content.
type Result struct {
	Nodes          []ExtractedNode `json:"nodes"`
	AuthorActors   []ActorRef      `json:"author_actors" desc:"Who published or authored this content"`
	ResourceTags   []string        `json:"resource_tags"`
	SignalTags     []string        `json:"signal_tags"`
	ImpliedQueries []string        `json:"implied_queries" desc:"Follow-up local search queries this content suggests"`
}

// Batch is a validated extraction tied to its origin, ready for dedup.
type Batch struct {
	SourceURL   string
	SourceKey   string
	ChannelType string
	ContentHash string
	Nodes       []*models.SignalNode
	Snippets    map[uuid.UUID]string
	Authors     []ActorRef
	Tags        []string
	Queries     []string
}

// Extractor calls the LLM with the region prompt and page text and converts
// the structured result into domain nodes.
type Extractor struct {
	client llm.Client
	region RegionPrompt
}

// RegionPrompt carries what the system prompt needs to know about the
// region.
type RegionPrompt struct {
	Name    string
	Slug    string
	Context string
}

// New creates an extractor bound to one region.
func New(client llm.Client, region RegionPrompt) *Extractor {
	return &Extractor{client: client, region: region}
}

// ExtractSignals extracts a signal batch from content fetched at sourceURL.
// When firsthandOnly is set (web-search sources), nodes the model marks as
// re-reports are dropped.
func (e *Extractor) ExtractSignals(ctx context.Context, content, sourceURL, sourceKey, channelType string, firsthandOnly bool, now time.Time) (*Batch, error) {
	content = truncate(content, maxContentRunes)

	user := fmt.Sprintf("Source URL: %s\n\nContent:\n%s", sourceURL, content)
	if firsthandOnly {
		user = "Only report signals this page originates first-hand. Mark anything merely re-reported with is_firsthand=false.\n\n" + user
	}

	result, err := llm.Extract[Result](ctx, e.client, e.systemPrompt(), user)
	if err != nil {
		return nil, fmt.Errorf("extraction failed for %s: %w", sourceURL, err)
	}

	batch := &Batch{
		SourceURL:   sourceURL,
		SourceKey:   sourceKey,
		ChannelType: channelType,
		ContentHash: models.ContentHash(content),
		Snippets:    make(map[uuid.UUID]string),
		Authors:     result.AuthorActors,
		Tags:        append(result.ResourceTags, result.SignalTags...),
		Queries:     result.ImpliedQueries,
	}

	for i := range result.Nodes {
		raw := &result.Nodes[i]
		if firsthandOnly && !raw.IsFirsthand {
			slog.Debug("Dropping non-firsthand node", "title", raw.Title, "url", sourceURL)
			continue
		}
		node, err := toSignalNode(raw, sourceURL, now)
		if err != nil {
			slog.Warn("Dropping malformed extracted node",
				"title", raw.Title, "url", sourceURL, "error", err)
			continue
		}
		batch.Nodes = append(batch.Nodes, node)
		batch.Snippets[node.Meta.ID] = models.Snippet(raw.Summary, 280)
	}

	return batch, nil
}

func toSignalNode(raw *ExtractedNode, sourceURL string, now time.Time) (*models.SignalNode, error) {
	node := &models.SignalNode{
		Type: models.NodeType(raw.Type),
		Meta: models.Meta{
			ID:                  uuid.New(),
			Title:               strings.TrimSpace(raw.Title),
			Summary:             strings.TrimSpace(raw.Summary),
			Sensitivity:         models.Sensitivity(raw.Sensitivity),
			Confidence:          raw.Confidence,
			Freshness:           1.0,
			SourceURL:           sourceURL,
			ExtractedAt:         now,
			LastConfirmedActive: now,
			AudienceRoles:       raw.AudienceRoles,
			MentionedActors:     raw.MentionedActors,
		},
	}
	if raw.Lat != nil && raw.Lng != nil {
		p := models.GeoPoint{Lat: *raw.Lat, Lng: *raw.Lng, Precision: models.PrecisionCity}
		if raw.GeoPrecision != nil {
			p.Precision = models.Precision(*raw.GeoPrecision)
		}
		node.Meta.Location = &p
	}
	if raw.LocationName != nil {
		node.Meta.LocationName = *raw.LocationName
	}

	switch node.Type {
	case models.NodeGathering:
		g := &models.GatheringFields{}
		if raw.StartsAt != nil {
			t, err := time.Parse(time.RFC3339, *raw.StartsAt)
			if err != nil {
				return nil, fmt.Errorf("bad starts_at %q: %w", *raw.StartsAt, err)
			}
			g.StartsAt = &t
		}
		if raw.EndsAt != nil {
			t, err := time.Parse(time.RFC3339, *raw.EndsAt)
			if err == nil {
				g.EndsAt = &t
			}
		}
		if raw.ActionURL != nil {
			g.ActionURL = *raw.ActionURL
		}
		if raw.Organizer != nil {
			g.Organizer = *raw.Organizer
		}
		if raw.IsRecurring != nil {
			g.IsRecurring = *raw.IsRecurring
		}
		node.Gathering = g
	case models.NodeAid:
		a := &models.AidFields{}
		if raw.ActionURL != nil {
			a.ActionURL = *raw.ActionURL
		}
		if raw.Availability != nil {
			a.Availability = *raw.Availability
		}
		if raw.IsOngoing != nil {
			a.IsOngoing = *raw.IsOngoing
		}
		node.Aid = a
	case models.NodeNeed:
		n := &models.NeedFields{}
		if raw.ActionURL != nil {
			n.ActionURL = *raw.ActionURL
		}
		node.Need = n
	case models.NodeNotice:
		sev := models.SeverityInfo
		if raw.Severity != nil {
			sev = models.Severity(*raw.Severity)
		}
		node.Notice = &models.NoticeFields{Severity: sev}
	case models.NodeTension:
		t := &models.TensionFields{}
		if raw.Category != nil {
			t.Category = *raw.Category
		}
		if raw.WhatWouldHelp != nil {
			t.WhatWouldHelp = *raw.WhatWouldHelp
		}
		node.Tension = t
	}

	if err := node.Validate(); err != nil {
		return nil, err
	}
	return node, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
