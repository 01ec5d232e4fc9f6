package types

type TableFormat string

const (
	TableFormatTSV  TableFormat = "tsv"
	TableFormatYAML TableFormat = "yaml"
)

// LeafTableHeader is the fixed column order of the leaf table.
var LeafTableHeader = []string{"ChEBI ID", "Type", "Name", "SMILES"}
