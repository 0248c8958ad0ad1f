package extract

import (
	"fmt"
	"strings"
)

// systemPrompt assembles the extraction instructions for the region. The
// model sees what counts as local, the five signal variants, and the
// sensitivity rules; the output contract itself is enforced by the derived
// schema, not prose.
func (e *Extractor) systemPrompt() string {
	var b strings.Builder

	fmt.Fprintf(&b, `You extract community signals for %s.

A signal is a concrete, local, actionable fact. The five kinds:
- gathering: a scheduled or ongoing event people can attend
- aid: a resource or service being offered
- need: an ask or unmet demand
- notice: information people in the area should know
- tension: a problem, conflict, or unmet systemic issue

Rules:
- Only report signals relevant to %s and its surroundings. National or
  global items are not signals unless they name a local impact.
- Titles are short and specific ("Free dinner at Powderhorn Park Sat 6pm"),
  never generic ("Community event").
- Set confidence by how verifiable and concrete the signal is.
- Sensitivity: "elevated" for signals naming vulnerable groups or private
  gatherings; "sensitive" for anything where exposure could cause harm
  (immigration status, domestic violence resources, undisclosed addresses).
- Locate signals as precisely as the content allows and say so in
  geo_precision. Never invent coordinates.
- Record the authors or publishing organizations in author_actors, and any
  organizations or officials the content mentions in mentioned_actors.
- implied_queries are local follow-up searches a reader of this content
  would run next. At most five.
- Do not report advertisements, listicles, or national news roundups.
`, e.region.Name, e.region.Name)

	if e.region.Context != "" {
		fmt.Fprintf(&b, "\nRegion context:\n%s\n", e.region.Context)
	}

	return b.String()
}
