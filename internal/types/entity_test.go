package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRelationKind(t *testing.T) {
	tests := []struct {
		raw  string
		want RelationKind
		ok   bool
	}{
		{raw: "is a", want: RelationIsA, ok: true},
		{raw: "has role", want: RelationHasRole, ok: true},
		{raw: " has role\n", want: RelationHasRole, ok: true},
		{raw: "IS A", want: RelationUnknown, ok: false},
		{raw: "Has Role", want: RelationUnknown, ok: false},
		{raw: "has part", want: RelationUnknown, ok: false},
		{raw: "is_a", want: RelationUnknown, ok: false},
		{raw: "", want: RelationUnknown, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseRelationKind(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestOntologyEntityWithStructure(t *testing.T) {
	entity := OntologyEntity{ID: "CHEBI:16236", Name: "ethanol", Relation: RelationIsA}
	resolved := entity.WithStructure("CCO")
	assert.False(t, entity.HasStructure())
	assert.True(t, resolved.HasStructure())
	assert.Equal(t, "CCO", resolved.Structure)
}
