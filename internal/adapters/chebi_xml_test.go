package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeListElementsWithoutNamespace(t *testing.T) {
	elements, err := decodeListElements([]byte(`<return>
  <ListElement><chebiName>a</chebiName><chebiId>CHEBI:1</chebiId><type>is a</type></ListElement>
  <ListElement><chebiId>CHEBI:2</chebiId><type>is a</type></ListElement>
</return>`))
	require.NoError(t, err)
	require.Len(t, elements, 2)
	assert.Equal(t, "a", textValue(elements[0].Name))
	assert.Nil(t, elements[1].Name)
	assert.Equal(t, "CHEBI:2", textValue(elements[1].ID))
}

func TestDecodeCompleteEntityKeepsFirstValues(t *testing.T) {
	entity, err := decodeCompleteEntity([]byte(`<return>
  <chebiAsciiName> water </chebiAsciiName>
  <smiles>[H]O[H]</smiles>
  <OntologyChildren><chebiAsciiName>other</chebiAsciiName><smiles>O</smiles></OntologyChildren>
</return>`))
	require.NoError(t, err)
	assert.Equal(t, "water", entity.asciiName)
	assert.Equal(t, "[H]O[H]", entity.smiles)
	assert.True(t, entity.hasSmiles)
}

func TestDecodeCompleteEntityBlankSmiles(t *testing.T) {
	entity, err := decodeCompleteEntity([]byte(`<return><smiles>  </smiles></return>`))
	require.NoError(t, err)
	assert.False(t, entity.hasSmiles)
}

func TestWalkXMLRejectsText(t *testing.T) {
	_, err := decodeListElements([]byte("Internal error"))
	require.ErrorIs(t, err, errNotXML)
}
