// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fourthplaces/rootsignal/ent/actor"
	"github.com/fourthplaces/rootsignal/ent/evidence"
	"github.com/fourthplaces/rootsignal/ent/pipelinerun"
	"github.com/fourthplaces/rootsignal/ent/response"
	"github.com/fourthplaces/rootsignal/ent/schema"
	"github.com/fourthplaces/rootsignal/ent/signal"
	"github.com/fourthplaces/rootsignal/ent/source"
	"github.com/fourthplaces/rootsignal/ent/storedevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	actorFields := schema.Actor{}.Fields()
	_ = actorFields
	// actorDescKind is the schema descriptor for kind field.
	actorDescKind := actorFields[4].Descriptor()
	// actor.DefaultKind holds the default value on creation for the kind field.
	actor.DefaultKind = actorDescKind.Default.(string)
	// actorDescSignalCount is the schema descriptor for signal_count field.
	actorDescSignalCount := actorFields[6].Descriptor()
	// actor.DefaultSignalCount holds the default value on creation for the signal_count field.
	actor.DefaultSignalCount = actorDescSignalCount.Default.(int)
	// actorDescFirstSeen is the schema descriptor for first_seen field.
	actorDescFirstSeen := actorFields[9].Descriptor()
	// actor.DefaultFirstSeen holds the default value on creation for the first_seen field.
	actor.DefaultFirstSeen = actorDescFirstSeen.Default.(func() time.Time)
	evidenceFields := schema.Evidence{}.Fields()
	_ = evidenceFields
	// evidenceDescCreatedAt is the schema descriptor for created_at field.
	evidenceDescCreatedAt := evidenceFields[8].Descriptor()
	// evidence.DefaultCreatedAt holds the default value on creation for the created_at field.
	evidence.DefaultCreatedAt = evidenceDescCreatedAt.Default.(func() time.Time)
	pipelinerunFields := schema.PipelineRun{}.Fields()
	_ = pipelinerunFields
	// pipelinerunDescStartedAt is the schema descriptor for started_at field.
	pipelinerunDescStartedAt := pipelinerunFields[3].Descriptor()
	// pipelinerun.DefaultStartedAt holds the default value on creation for the started_at field.
	pipelinerun.DefaultStartedAt = pipelinerunDescStartedAt.Default.(func() time.Time)
	// pipelinerunDescBudgetSpentCents is the schema descriptor for budget_spent_cents field.
	pipelinerunDescBudgetSpentCents := pipelinerunFields[7].Descriptor()
	// pipelinerun.DefaultBudgetSpentCents holds the default value on creation for the budget_spent_cents field.
	pipelinerun.DefaultBudgetSpentCents = pipelinerunDescBudgetSpentCents.Default.(int64)
	responseFields := schema.Response{}.Fields()
	_ = responseFields
	// responseDescCreatedAt is the schema descriptor for created_at field.
	responseDescCreatedAt := responseFields[4].Descriptor()
	// response.DefaultCreatedAt holds the default value on creation for the created_at field.
	response.DefaultCreatedAt = responseDescCreatedAt.Default.(func() time.Time)
	signalFields := schema.Signal{}.Fields()
	_ = signalFields
	// signalDescCorroborationCount is the schema descriptor for corroboration_count field.
	signalDescCorroborationCount := signalFields[9].Descriptor()
	// signal.DefaultCorroborationCount holds the default value on creation for the corroboration_count field.
	signal.DefaultCorroborationCount = signalDescCorroborationCount.Default.(int)
	// signalDescSourceDiversity is the schema descriptor for source_diversity field.
	signalDescSourceDiversity := signalFields[18].Descriptor()
	// signal.DefaultSourceDiversity holds the default value on creation for the source_diversity field.
	signal.DefaultSourceDiversity = signalDescSourceDiversity.Default.(int)
	// signalDescExternalRatio is the schema descriptor for external_ratio field.
	signalDescExternalRatio := signalFields[19].Descriptor()
	// signal.DefaultExternalRatio holds the default value on creation for the external_ratio field.
	signal.DefaultExternalRatio = signalDescExternalRatio.Default.(float64)
	// signalDescCauseHeat is the schema descriptor for cause_heat field.
	signalDescCauseHeat := signalFields[20].Descriptor()
	// signal.DefaultCauseHeat holds the default value on creation for the cause_heat field.
	signal.DefaultCauseHeat = signalDescCauseHeat.Default.(float64)
	// signalDescCreatedAt is the schema descriptor for created_at field.
	signalDescCreatedAt := signalFields[26].Descriptor()
	// signal.DefaultCreatedAt holds the default value on creation for the created_at field.
	signal.DefaultCreatedAt = signalDescCreatedAt.Default.(func() time.Time)
	// signalDescUpdatedAt is the schema descriptor for updated_at field.
	signalDescUpdatedAt := signalFields[27].Descriptor()
	// signal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	signal.DefaultUpdatedAt = signalDescUpdatedAt.Default.(func() time.Time)
	// signal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	signal.UpdateDefaultUpdatedAt = signalDescUpdatedAt.UpdateDefault.(func() time.Time)
	sourceFields := schema.Source{}.Fields()
	_ = sourceFields
	// sourceDescWeight is the schema descriptor for weight field.
	sourceDescWeight := sourceFields[6].Descriptor()
	// source.DefaultWeight holds the default value on creation for the weight field.
	source.DefaultWeight = sourceDescWeight.Default.(float64)
	// sourceDescCadenceHours is the schema descriptor for cadence_hours field.
	sourceDescCadenceHours := sourceFields[7].Descriptor()
	// source.DefaultCadenceHours holds the default value on creation for the cadence_hours field.
	source.DefaultCadenceHours = sourceDescCadenceHours.Default.(int)
	// sourceDescConsecutiveEmptyRuns is the schema descriptor for consecutive_empty_runs field.
	sourceDescConsecutiveEmptyRuns := sourceFields[8].Descriptor()
	// source.DefaultConsecutiveEmptyRuns holds the default value on creation for the consecutive_empty_runs field.
	source.DefaultConsecutiveEmptyRuns = sourceDescConsecutiveEmptyRuns.Default.(int)
	// sourceDescScrapeCount is the schema descriptor for scrape_count field.
	sourceDescScrapeCount := sourceFields[9].Descriptor()
	// source.DefaultScrapeCount holds the default value on creation for the scrape_count field.
	source.DefaultScrapeCount = sourceDescScrapeCount.Default.(int)
	// sourceDescSignalsProduced is the schema descriptor for signals_produced field.
	sourceDescSignalsProduced := sourceFields[10].Descriptor()
	// source.DefaultSignalsProduced holds the default value on creation for the signals_produced field.
	source.DefaultSignalsProduced = sourceDescSignalsProduced.Default.(int)
	// sourceDescSignalsCorroborated is the schema descriptor for signals_corroborated field.
	sourceDescSignalsCorroborated := sourceFields[11].Descriptor()
	// source.DefaultSignalsCorroborated holds the default value on creation for the signals_corroborated field.
	source.DefaultSignalsCorroborated = sourceDescSignalsCorroborated.Default.(int)
	// sourceDescTensionsProduced is the schema descriptor for tensions_produced field.
	sourceDescTensionsProduced := sourceFields[12].Descriptor()
	// source.DefaultTensionsProduced holds the default value on creation for the tensions_produced field.
	source.DefaultTensionsProduced = sourceDescTensionsProduced.Default.(int)
	// sourceDescQualityPenalty is the schema descriptor for quality_penalty field.
	sourceDescQualityPenalty := sourceFields[15].Descriptor()
	// source.DefaultQualityPenalty holds the default value on creation for the quality_penalty field.
	source.DefaultQualityPenalty = sourceDescQualityPenalty.Default.(float64)
	// sourceDescActive is the schema descriptor for active field.
	sourceDescActive := sourceFields[17].Descriptor()
	// source.DefaultActive holds the default value on creation for the active field.
	source.DefaultActive = sourceDescActive.Default.(bool)
	// sourceDescCreatedAt is the schema descriptor for created_at field.
	sourceDescCreatedAt := sourceFields[20].Descriptor()
	// source.DefaultCreatedAt holds the default value on creation for the created_at field.
	source.DefaultCreatedAt = sourceDescCreatedAt.Default.(func() time.Time)
	// sourceDescUpdatedAt is the schema descriptor for updated_at field.
	sourceDescUpdatedAt := sourceFields[21].Descriptor()
	// source.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	source.DefaultUpdatedAt = sourceDescUpdatedAt.Default.(func() time.Time)
	// source.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	source.UpdateDefaultUpdatedAt = sourceDescUpdatedAt.UpdateDefault.(func() time.Time)
	storedeventFields := schema.StoredEvent{}.Fields()
	_ = storedeventFields
	// storedeventDescTs is the schema descriptor for ts field.
	storedeventDescTs := storedeventFields[1].Descriptor()
	// storedevent.DefaultTs holds the default value on creation for the ts field.
	storedevent.DefaultTs = storedeventDescTs.Default.(func() time.Time)
	// storedeventDescSchemaV is the schema descriptor for schema_v field.
	storedeventDescSchemaV := storedeventFields[8].Descriptor()
	// storedevent.DefaultSchemaV holds the default value on creation for the schema_v field.
	storedevent.DefaultSchemaV = storedeventDescSchemaV.Default.(int)
}
