package legislativa

// Status is the change state of a document relative to its last snapshot.
type Status string

// Document change states.
const (
	StatusNew       Status = "new"
	StatusUnchanged Status = "unchanged"
	StatusUpdated   Status = "updated"
)

// Classify compares the previously stored text of a document with freshly
// extracted text. An empty previous text means the document was never seen,
// even when the new text is empty too.
func Classify(oldText, newText string) Status {
	switch {
	case oldText == "":
		return StatusNew
	case oldText == newText:
		return StatusUnchanged
	default:
		return StatusUpdated
	}
}

// StatusMap holds the latest status per document name.
type StatusMap map[string]Status

// Clone returns a copy of the map.
func (m StatusMap) Clone() StatusMap {
	out := make(StatusMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
