package legislativa

// DefaultChunkSize is the maximum number of characters sent to the
// completion API in one request.
const DefaultChunkSize = 1500

// SplitChunks splits text into consecutive pieces of at most size
// characters (runes). Chunks do not overlap and concatenate back to text.
// An empty text yields no chunks.
func SplitChunks(text string, size int) []string {
	if text == "" {
		return nil
	}
	if size <= 0 {
		return []string{text}
	}

	var chunks []string
	start, count := 0, 0
	for i := range text {
		if count == size {
			chunks = append(chunks, text[start:i])
			start, count = i, 0
		}
		count++
	}
	return append(chunks, text[start:])
}
