// Code generated by ent, DO NOT EDIT.

package pipelinerun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fourthplaces/rootsignal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldID, id))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldRegion, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCompletedAt, v))
}

// BudgetSpentCents applies equality check predicate on the "budget_spent_cents" field. It's identical to BudgetSpentCentsEQ.
func BudgetSpentCents(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldBudgetSpentCents, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldError, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldRegion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldCompletedAt))
}

// StatsIsNil applies the IsNil predicate on the "stats" field.
func StatsIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldStats))
}

// StatsNotNil applies the NotNil predicate on the "stats" field.
func StatsNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldStats))
}

// TimelineIsNil applies the IsNil predicate on the "timeline" field.
func TimelineIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldTimeline))
}

// TimelineNotNil applies the NotNil predicate on the "timeline" field.
func TimelineNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldTimeline))
}

// BudgetSpentCentsEQ applies the EQ predicate on the "budget_spent_cents" field.
func BudgetSpentCentsEQ(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldBudgetSpentCents, v))
}

// BudgetSpentCentsNEQ applies the NEQ predicate on the "budget_spent_cents" field.
func BudgetSpentCentsNEQ(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldBudgetSpentCents, v))
}

// BudgetSpentCentsIn applies the In predicate on the "budget_spent_cents" field.
func BudgetSpentCentsIn(vs ...int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldBudgetSpentCents, vs...))
}

// BudgetSpentCentsNotIn applies the NotIn predicate on the "budget_spent_cents" field.
func BudgetSpentCentsNotIn(vs ...int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldBudgetSpentCents, vs...))
}

// BudgetSpentCentsGT applies the GT predicate on the "budget_spent_cents" field.
func BudgetSpentCentsGT(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldBudgetSpentCents, v))
}

// BudgetSpentCentsGTE applies the GTE predicate on the "budget_spent_cents" field.
func BudgetSpentCentsGTE(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldBudgetSpentCents, v))
}

// BudgetSpentCentsLT applies the LT predicate on the "budget_spent_cents" field.
func BudgetSpentCentsLT(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldBudgetSpentCents, v))
}

// BudgetSpentCentsLTE applies the LTE predicate on the "budget_spent_cents" field.
func BudgetSpentCentsLTE(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldBudgetSpentCents, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldError, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.NotPredicates(p))
}
