// Code generated by ent, DO NOT EDIT.

package response

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fourthplaces/rootsignal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldID, id))
}

// ResponseID applies equality check predicate on the "response_id" field. It's identical to ResponseIDEQ.
func ResponseID(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldResponseID, v))
}

// TensionID applies equality check predicate on the "tension_id" field. It's identical to TensionIDEQ.
func TensionID(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldTensionID, v))
}

// Strength applies equality check predicate on the "strength" field. It's identical to StrengthEQ.
func Strength(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldStrength, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldExplanation, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldCreatedAt, v))
}

// ResponseIDEQ applies the EQ predicate on the "response_id" field.
func ResponseIDEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldResponseID, v))
}

// ResponseIDNEQ applies the NEQ predicate on the "response_id" field.
func ResponseIDNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldResponseID, v))
}

// ResponseIDIn applies the In predicate on the "response_id" field.
func ResponseIDIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldResponseID, vs...))
}

// ResponseIDNotIn applies the NotIn predicate on the "response_id" field.
func ResponseIDNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldResponseID, vs...))
}

// ResponseIDGT applies the GT predicate on the "response_id" field.
func ResponseIDGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldResponseID, v))
}

// ResponseIDGTE applies the GTE predicate on the "response_id" field.
func ResponseIDGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldResponseID, v))
}

// ResponseIDLT applies the LT predicate on the "response_id" field.
func ResponseIDLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldResponseID, v))
}

// ResponseIDLTE applies the LTE predicate on the "response_id" field.
func ResponseIDLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldResponseID, v))
}

// ResponseIDContains applies the Contains predicate on the "response_id" field.
func ResponseIDContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldResponseID, v))
}

// ResponseIDHasPrefix applies the HasPrefix predicate on the "response_id" field.
func ResponseIDHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldResponseID, v))
}

// ResponseIDHasSuffix applies the HasSuffix predicate on the "response_id" field.
func ResponseIDHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldResponseID, v))
}

// ResponseIDEqualFold applies the EqualFold predicate on the "response_id" field.
func ResponseIDEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldResponseID, v))
}

// ResponseIDContainsFold applies the ContainsFold predicate on the "response_id" field.
func ResponseIDContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldResponseID, v))
}

// TensionIDEQ applies the EQ predicate on the "tension_id" field.
func TensionIDEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldTensionID, v))
}

// TensionIDNEQ applies the NEQ predicate on the "tension_id" field.
func TensionIDNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldTensionID, v))
}

// TensionIDIn applies the In predicate on the "tension_id" field.
func TensionIDIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldTensionID, vs...))
}

// TensionIDNotIn applies the NotIn predicate on the "tension_id" field.
func TensionIDNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldTensionID, vs...))
}

// TensionIDGT applies the GT predicate on the "tension_id" field.
func TensionIDGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldTensionID, v))
}

// TensionIDGTE applies the GTE predicate on the "tension_id" field.
func TensionIDGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldTensionID, v))
}

// TensionIDLT applies the LT predicate on the "tension_id" field.
func TensionIDLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldTensionID, v))
}

// TensionIDLTE applies the LTE predicate on the "tension_id" field.
func TensionIDLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldTensionID, v))
}

// TensionIDContains applies the Contains predicate on the "tension_id" field.
func TensionIDContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldTensionID, v))
}

// TensionIDHasPrefix applies the HasPrefix predicate on the "tension_id" field.
func TensionIDHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldTensionID, v))
}

// TensionIDHasSuffix applies the HasSuffix predicate on the "tension_id" field.
func TensionIDHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldTensionID, v))
}

// TensionIDEqualFold applies the EqualFold predicate on the "tension_id" field.
func TensionIDEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldTensionID, v))
}

// TensionIDContainsFold applies the ContainsFold predicate on the "tension_id" field.
func TensionIDContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldTensionID, v))
}

// StrengthEQ applies the EQ predicate on the "strength" field.
func StrengthEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldStrength, v))
}

// StrengthNEQ applies the NEQ predicate on the "strength" field.
func StrengthNEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldStrength, v))
}

// StrengthIn applies the In predicate on the "strength" field.
func StrengthIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldStrength, vs...))
}

// StrengthNotIn applies the NotIn predicate on the "strength" field.
func StrengthNotIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldStrength, vs...))
}

// StrengthGT applies the GT predicate on the "strength" field.
func StrengthGT(v float64) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldStrength, v))
}

// StrengthGTE applies the GTE predicate on the "strength" field.
func StrengthGTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldStrength, v))
}

// StrengthLT applies the LT predicate on the "strength" field.
func StrengthLT(v float64) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldStrength, v))
}

// StrengthLTE applies the LTE predicate on the "strength" field.
func StrengthLTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldStrength, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldExplanation, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Response) predicate.Response {
	return predicate.Response(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Response) predicate.Response {
	return predicate.Response(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Response) predicate.Response {
	return predicate.Response(sql.NotPredicates(p))
}
