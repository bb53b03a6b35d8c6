package model

import "time"

// MemoryEntry is a learned correction applied to future extractions.
type MemoryEntry struct {
	LastSeen     time.Time    `json:"last_seen"`
	Pattern      string       `json:"pattern"`
	Correction   string       `json:"correction"`
	CorrectedBy  string       `json:"corrected_by"`
	DocumentType DocumentType `json:"document_type"`
	Occurrences  int          `json:"occurrences"`
}
