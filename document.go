package legislativa

// Constant values the scraper stamps on every document.
const (
	CategoryLegislation  = "Legislation"
	EffectiveDateUnknown = "N/A"
	KeywordsRegulations  = "regulations"
)

// Document represents one PDF found on a source page.
//
// Name is the trimmed anchor text of the link and is the document's
// identity for change tracking. Names are not unique: two links with the
// same text produce two catalog rows that share one history snapshot.
type Document struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	EffectiveDate string `json:"effectiveDate"`
	SourceURL     string `json:"sourceUrl"`
	Summary       string `json:"summary"`
	FileURL       string `json:"fileUrl"`
	Keywords      string `json:"keywords"`
	Content       string `json:"content"`

	// ContentHash is a hex digest of Content for display. Change detection
	// always compares full text.
	ContentHash string `json:"contentHash"`
}
