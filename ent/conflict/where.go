// Code generated by ent, DO NOT EDIT.

package conflict

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/specsmith/specsmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldProjectID, v))
}

// IncumbentSpecID applies equality check predicate on the "incumbent_spec_id" field. It's identical to IncumbentSpecIDEQ.
func IncumbentSpecID(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldIncumbentSpecID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldCategory, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldKey, v))
}

// NewValue applies equality check predicate on the "new_value" field. It's identical to NewValueEQ.
func NewValue(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldNewValue, v))
}

// NewConfidence applies equality check predicate on the "new_confidence" field. It's identical to NewConfidenceEQ.
func NewConfidence(v float64) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldNewConfidence, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldDetail, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldCreatedBy, v))
}

// Resolver applies equality check predicate on the "resolver" field. It's identical to ResolverEQ.
func Resolver(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldResolver, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldResolvedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContainsFold(FieldProjectID, v))
}

// IncumbentSpecIDEQ applies the EQ predicate on the "incumbent_spec_id" field.
func IncumbentSpecIDEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldIncumbentSpecID, v))
}

// IncumbentSpecIDNEQ applies the NEQ predicate on the "incumbent_spec_id" field.
func IncumbentSpecIDNEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNEQ(FieldIncumbentSpecID, v))
}

// IncumbentSpecIDIn applies the In predicate on the "incumbent_spec_id" field.
func IncumbentSpecIDIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldIn(FieldIncumbentSpecID, vs...))
}

// IncumbentSpecIDNotIn applies the NotIn predicate on the "incumbent_spec_id" field.
func IncumbentSpecIDNotIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNotIn(FieldIncumbentSpecID, vs...))
}

// IncumbentSpecIDGT applies the GT predicate on the "incumbent_spec_id" field.
func IncumbentSpecIDGT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGT(FieldIncumbentSpecID, v))
}

// IncumbentSpecIDGTE applies the GTE predicate on the "incumbent_spec_id" field.
func IncumbentSpecIDGTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGTE(FieldIncumbentSpecID, v))
}

// IncumbentSpecIDLT applies the LT predicate on the "incumbent_spec_id" field.
func IncumbentSpecIDLT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLT(FieldIncumbentSpecID, v))
}

// IncumbentSpecIDLTE applies the LTE predicate on the "incumbent_spec_id" field.
func IncumbentSpecIDLTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLTE(FieldIncumbentSpecID, v))
}

// IncumbentSpecIDContains applies the Contains predicate on the "incumbent_spec_id" field.
func IncumbentSpecIDContains(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContains(FieldIncumbentSpecID, v))
}

// IncumbentSpecIDHasPrefix applies the HasPrefix predicate on the "incumbent_spec_id" field.
func IncumbentSpecIDHasPrefix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasPrefix(FieldIncumbentSpecID, v))
}

// IncumbentSpecIDHasSuffix applies the HasSuffix predicate on the "incumbent_spec_id" field.
func IncumbentSpecIDHasSuffix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasSuffix(FieldIncumbentSpecID, v))
}

// IncumbentSpecIDEqualFold applies the EqualFold predicate on the "incumbent_spec_id" field.
func IncumbentSpecIDEqualFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEqualFold(FieldIncumbentSpecID, v))
}

// IncumbentSpecIDContainsFold applies the ContainsFold predicate on the "incumbent_spec_id" field.
func IncumbentSpecIDContainsFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContainsFold(FieldIncumbentSpecID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContainsFold(FieldCategory, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContainsFold(FieldKey, v))
}

// NewValueEQ applies the EQ predicate on the "new_value" field.
func NewValueEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldNewValue, v))
}

// NewValueNEQ applies the NEQ predicate on the "new_value" field.
func NewValueNEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNEQ(FieldNewValue, v))
}

// NewValueIn applies the In predicate on the "new_value" field.
func NewValueIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldIn(FieldNewValue, vs...))
}

// NewValueNotIn applies the NotIn predicate on the "new_value" field.
func NewValueNotIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNotIn(FieldNewValue, vs...))
}

// NewValueGT applies the GT predicate on the "new_value" field.
func NewValueGT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGT(FieldNewValue, v))
}

// NewValueGTE applies the GTE predicate on the "new_value" field.
func NewValueGTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGTE(FieldNewValue, v))
}

// NewValueLT applies the LT predicate on the "new_value" field.
func NewValueLT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLT(FieldNewValue, v))
}

// NewValueLTE applies the LTE predicate on the "new_value" field.
func NewValueLTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLTE(FieldNewValue, v))
}

// NewValueContains applies the Contains predicate on the "new_value" field.
func NewValueContains(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContains(FieldNewValue, v))
}

// NewValueHasPrefix applies the HasPrefix predicate on the "new_value" field.
func NewValueHasPrefix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasPrefix(FieldNewValue, v))
}

// NewValueHasSuffix applies the HasSuffix predicate on the "new_value" field.
func NewValueHasSuffix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasSuffix(FieldNewValue, v))
}

// NewValueEqualFold applies the EqualFold predicate on the "new_value" field.
func NewValueEqualFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEqualFold(FieldNewValue, v))
}

// NewValueContainsFold applies the ContainsFold predicate on the "new_value" field.
func NewValueContainsFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContainsFold(FieldNewValue, v))
}

// NewConfidenceEQ applies the EQ predicate on the "new_confidence" field.
func NewConfidenceEQ(v float64) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldNewConfidence, v))
}

// NewConfidenceNEQ applies the NEQ predicate on the "new_confidence" field.
func NewConfidenceNEQ(v float64) predicate.Conflict {
	return predicate.Conflict(sql.FieldNEQ(FieldNewConfidence, v))
}

// NewConfidenceIn applies the In predicate on the "new_confidence" field.
func NewConfidenceIn(vs ...float64) predicate.Conflict {
	return predicate.Conflict(sql.FieldIn(FieldNewConfidence, vs...))
}

// NewConfidenceNotIn applies the NotIn predicate on the "new_confidence" field.
func NewConfidenceNotIn(vs ...float64) predicate.Conflict {
	return predicate.Conflict(sql.FieldNotIn(FieldNewConfidence, vs...))
}

// NewConfidenceGT applies the GT predicate on the "new_confidence" field.
func NewConfidenceGT(v float64) predicate.Conflict {
	return predicate.Conflict(sql.FieldGT(FieldNewConfidence, v))
}

// NewConfidenceGTE applies the GTE predicate on the "new_confidence" field.
func NewConfidenceGTE(v float64) predicate.Conflict {
	return predicate.Conflict(sql.FieldGTE(FieldNewConfidence, v))
}

// NewConfidenceLT applies the LT predicate on the "new_confidence" field.
func NewConfidenceLT(v float64) predicate.Conflict {
	return predicate.Conflict(sql.FieldLT(FieldNewConfidence, v))
}

// NewConfidenceLTE applies the LTE predicate on the "new_confidence" field.
func NewConfidenceLTE(v float64) predicate.Conflict {
	return predicate.Conflict(sql.FieldLTE(FieldNewConfidence, v))
}

// ConflictTypeEQ applies the EQ predicate on the "conflict_type" field.
func ConflictTypeEQ(v ConflictType) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldConflictType, v))
}

// ConflictTypeNEQ applies the NEQ predicate on the "conflict_type" field.
func ConflictTypeNEQ(v ConflictType) predicate.Conflict {
	return predicate.Conflict(sql.FieldNEQ(FieldConflictType, v))
}

// ConflictTypeIn applies the In predicate on the "conflict_type" field.
func ConflictTypeIn(vs ...ConflictType) predicate.Conflict {
	return predicate.Conflict(sql.FieldIn(FieldConflictType, vs...))
}

// ConflictTypeNotIn applies the NotIn predicate on the "conflict_type" field.
func ConflictTypeNotIn(vs ...ConflictType) predicate.Conflict {
	return predicate.Conflict(sql.FieldNotIn(FieldConflictType, vs...))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.Conflict {
	return predicate.Conflict(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.Conflict {
	return predicate.Conflict(sql.FieldNotNull(FieldDetail))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContainsFold(FieldDetail, v))
}

// ResolutionEQ applies the EQ predicate on the "resolution" field.
func ResolutionEQ(v Resolution) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldResolution, v))
}

// ResolutionNEQ applies the NEQ predicate on the "resolution" field.
func ResolutionNEQ(v Resolution) predicate.Conflict {
	return predicate.Conflict(sql.FieldNEQ(FieldResolution, v))
}

// ResolutionIn applies the In predicate on the "resolution" field.
func ResolutionIn(vs ...Resolution) predicate.Conflict {
	return predicate.Conflict(sql.FieldIn(FieldResolution, vs...))
}

// ResolutionNotIn applies the NotIn predicate on the "resolution" field.
func ResolutionNotIn(vs ...Resolution) predicate.Conflict {
	return predicate.Conflict(sql.FieldNotIn(FieldResolution, vs...))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContainsFold(FieldCreatedBy, v))
}

// ResolverEQ applies the EQ predicate on the "resolver" field.
func ResolverEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldResolver, v))
}

// ResolverNEQ applies the NEQ predicate on the "resolver" field.
func ResolverNEQ(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNEQ(FieldResolver, v))
}

// ResolverIn applies the In predicate on the "resolver" field.
func ResolverIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldIn(FieldResolver, vs...))
}

// ResolverNotIn applies the NotIn predicate on the "resolver" field.
func ResolverNotIn(vs ...string) predicate.Conflict {
	return predicate.Conflict(sql.FieldNotIn(FieldResolver, vs...))
}

// ResolverGT applies the GT predicate on the "resolver" field.
func ResolverGT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGT(FieldResolver, v))
}

// ResolverGTE applies the GTE predicate on the "resolver" field.
func ResolverGTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldGTE(FieldResolver, v))
}

// ResolverLT applies the LT predicate on the "resolver" field.
func ResolverLT(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLT(FieldResolver, v))
}

// ResolverLTE applies the LTE predicate on the "resolver" field.
func ResolverLTE(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldLTE(FieldResolver, v))
}

// ResolverContains applies the Contains predicate on the "resolver" field.
func ResolverContains(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContains(FieldResolver, v))
}

// ResolverHasPrefix applies the HasPrefix predicate on the "resolver" field.
func ResolverHasPrefix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasPrefix(FieldResolver, v))
}

// ResolverHasSuffix applies the HasSuffix predicate on the "resolver" field.
func ResolverHasSuffix(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldHasSuffix(FieldResolver, v))
}

// ResolverIsNil applies the IsNil predicate on the "resolver" field.
func ResolverIsNil() predicate.Conflict {
	return predicate.Conflict(sql.FieldIsNull(FieldResolver))
}

// ResolverNotNil applies the NotNil predicate on the "resolver" field.
func ResolverNotNil() predicate.Conflict {
	return predicate.Conflict(sql.FieldNotNull(FieldResolver))
}

// ResolverEqualFold applies the EqualFold predicate on the "resolver" field.
func ResolverEqualFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldEqualFold(FieldResolver, v))
}

// ResolverContainsFold applies the ContainsFold predicate on the "resolver" field.
func ResolverContainsFold(v string) predicate.Conflict {
	return predicate.Conflict(sql.FieldContainsFold(FieldResolver, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.Conflict {
	return predicate.Conflict(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.Conflict {
	return predicate.Conflict(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.Conflict {
	return predicate.Conflict(sql.FieldNotNull(FieldResolvedAt))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Conflict {
	return predicate.Conflict(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Conflict {
	return predicate.Conflict(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conflict) predicate.Conflict {
	return predicate.Conflict(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conflict) predicate.Conflict {
	return predicate.Conflict(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conflict) predicate.Conflict {
	return predicate.Conflict(sql.NotPredicates(p))
}
