package model

// DocumentType identifies the kind of trade document.
type DocumentType string

// Document type constants.
const (
	DocInvoice      DocumentType = "INVOICE"
	DocBillOfLading DocumentType = "BL"
	DocCartaPorte   DocumentType = "CP"
	DocManifest     DocumentType = "MANIFEST"
	DocPackingList  DocumentType = "PACKING_LIST"
	DocDUCAF        DocumentType = "DUCA-F"
	DocDUCAT        DocumentType = "DUCA-T"
	DocDUA          DocumentType = "DUA"
	DocFEL          DocumentType = "FEL"
	DocUnknown      DocumentType = "UNKNOWN"
)

// Provenance records how a field value was obtained.
type Provenance string

// Provenance constants.
const (
	ProvenancePattern   Provenance = "pattern"
	ProvenanceInference Provenance = "inference"
	ProvenanceManual    Provenance = "manual"
)

// MaxCorrectedConfidence caps the confidence a memory correction can assign.
const MaxCorrectedConfidence = 98

// ExtractionField is a single value pulled out of document text.
// Value holds a string, a float64 or nil.
type ExtractionField struct {
	Value      any        `json:"value"`
	Name       string     `json:"name"`
	Provenance Provenance `json:"provenance"`
	Column     string     `json:"column,omitempty"`
	Confidence int        `json:"confidence"`
}

// Text returns the value as a string when it holds one.
func (f ExtractionField) Text() (string, bool) {
	s, ok := f.Value.(string)
	return s, ok
}

// Number returns the value as a float64 when it holds one.
func (f ExtractionField) Number() (float64, bool) {
	n, ok := f.Value.(float64)
	return n, ok
}

// LineItem is one merchandise row of an invoice or packing list.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitValue   float64 `json:"unit_value"`
	TotalValue  float64 `json:"total_value"`
	Confidence  int     `json:"confidence"`
}

// Line item confidence levels.
const (
	LineItemConsistentConfidence   = 95
	LineItemInconsistentConfidence = 70
)

// ManifestRow is a parsed courier manifest line handed over by an importer.
type ManifestRow struct {
	Description string  `json:"description"`
	Recipient   string  `json:"recipient"`
	Tracking    string  `json:"tracking,omitempty"`
	Weight      float64 `json:"weight"`
	Value       float64 `json:"value"`
}
