package cdpdoc

import "strconv"

// Passage is the retrieval unit: a bounded chunk of one document's text.
// Passages are derived deterministically from a Document, so the identifier
// documentID:chunkIndex is stable across rebuilds.
type Passage struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"documentId"`
	CDPID      string    `json:"cdpId"` // Denormalized for per-corpus filtering
	URL        string    `json:"url"`   // Denormalized for citation and tie-breaking
	Title      string    `json:"title"`
	ChunkIndex int       `json:"chunkIndex"`
	Text       string    `json:"text"`
	Vector     []float32 `json:"vector,omitempty"`
}

// PassageID returns the stable identifier for a chunk of a document.
func PassageID(documentID string, chunkIndex int) string {
	return documentID + ":" + strconv.Itoa(chunkIndex)
}

// Validate returns an error if the passage contains invalid fields.
func (p *Passage) Validate() error {
	if p.DocumentID == "" {
		return Errorf(EINVALID, "passage document ID required")
	}
	if p.CDPID == "" {
		return Errorf(EINVALID, "passage CDP ID required")
	}
	if p.Text == "" {
		return Errorf(EINVALID, "passage text required")
	}
	return nil
}

// Chunker splits a document's text into overlapping passages sized for
// independent retrieval. Chunking is deterministic: identical input always
// yields identical passage boundaries.
type Chunker interface {
	Chunk(doc *Document) []Passage
}
