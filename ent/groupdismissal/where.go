// Code generated by ent, DO NOT EDIT.

package groupdismissal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/finlearn/finlearn/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldLTE(FieldID, id))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldEQ(FieldGroupID, v))
}

// DismissedAt applies equality check predicate on the "dismissed_at" field. It's identical to DismissedAtEQ.
func DismissedAt(v time.Time) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldEQ(FieldDismissedAt, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldContainsFold(FieldGroupID, v))
}

// DismissedAtEQ applies the EQ predicate on the "dismissed_at" field.
func DismissedAtEQ(v time.Time) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldEQ(FieldDismissedAt, v))
}

// DismissedAtNEQ applies the NEQ predicate on the "dismissed_at" field.
func DismissedAtNEQ(v time.Time) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldNEQ(FieldDismissedAt, v))
}

// DismissedAtIn applies the In predicate on the "dismissed_at" field.
func DismissedAtIn(vs ...time.Time) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldIn(FieldDismissedAt, vs...))
}

// DismissedAtNotIn applies the NotIn predicate on the "dismissed_at" field.
func DismissedAtNotIn(vs ...time.Time) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldNotIn(FieldDismissedAt, vs...))
}

// DismissedAtGT applies the GT predicate on the "dismissed_at" field.
func DismissedAtGT(v time.Time) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldGT(FieldDismissedAt, v))
}

// DismissedAtGTE applies the GTE predicate on the "dismissed_at" field.
func DismissedAtGTE(v time.Time) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldGTE(FieldDismissedAt, v))
}

// DismissedAtLT applies the LT predicate on the "dismissed_at" field.
func DismissedAtLT(v time.Time) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldLT(FieldDismissedAt, v))
}

// DismissedAtLTE applies the LTE predicate on the "dismissed_at" field.
func DismissedAtLTE(v time.Time) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.FieldLTE(FieldDismissedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GroupDismissal) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GroupDismissal) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GroupDismissal) predicate.GroupDismissal {
	return predicate.GroupDismissal(sql.NotPredicates(p))
}
