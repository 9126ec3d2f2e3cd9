package statement

// Split divides text into windows of at most maxChars characters, each window
// overlapping its predecessor by overlap characters. The overlap repeats
// context at chunk boundaries so the extraction service sees boundary
// transactions whole in at least one chunk; deduplicating the repeats is the
// merger's job, not Split's.
//
// Text that already fits in maxChars comes back as a single chunk. Split is
// deterministic and has no side effects.
func Split(text string, maxChars, overlap int) ([]string, error) {
	if maxChars <= 0 {
		return nil, &ConfigurationError{Reason: "max chunk size must be positive"}
	}
	if overlap < 0 || overlap >= maxChars {
		return nil, &ConfigurationError{Reason: "chunk overlap must be non-negative and smaller than the chunk size"}
	}

	if len(text) <= maxChars {
		return []string{text}, nil
	}

	stride := maxChars - overlap
	chunks := make([]string, 0, len(text)/stride+1)
	for i := 0; i < len(text); i += stride {
		end := i + maxChars
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[i:end])
	}
	return chunks, nil
}
