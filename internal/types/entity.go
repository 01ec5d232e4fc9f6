package types

import "strings"

type RelationKind string

const (
	RelationUnknown RelationKind = ""
	RelationIsA     RelationKind = "is a"
	RelationHasRole RelationKind = "has role"
)

// ParseRelationKind maps a raw ontology edge label onto a known relation.
// Only the exact labels "is a" and "has role" match; surrounding
// whitespace is ignored but letter case is not.
func ParseRelationKind(raw string) (RelationKind, bool) {
	switch RelationKind(strings.TrimSpace(raw)) {
	case RelationIsA:
		return RelationIsA, true
	case RelationHasRole:
		return RelationHasRole, true
	default:
		return RelationUnknown, false
	}
}

type OntologyEntity struct {
	Name      string
	ID        string
	Relation  RelationKind
	Structure string
}

func (e OntologyEntity) HasStructure() bool {
	return strings.TrimSpace(e.Structure) != ""
}

// WithStructure returns a copy of e carrying the given SMILES string.
func (e OntologyEntity) WithStructure(smiles string) OntologyEntity {
	e.Structure = smiles
	return e
}

type DropReason string

const (
	DropReasonIncomplete DropReason = "incomplete"
	DropReasonRelation   DropReason = "relation"
	DropReasonInvalidID  DropReason = "invalid-id"
)

type DroppedEntity struct {
	ParentID    string
	ID          string
	Name        string
	RawRelation string
	Reason      DropReason
}

type Children struct {
	Entities []OntologyEntity
	Dropped  []DroppedEntity
}

func (c Children) Empty() bool {
	return len(c.Entities) == 0
}

type LeafReport struct {
	RootID  string
	Leaves  []OntologyEntity
	Dropped []DroppedEntity
}
