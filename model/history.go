package model

const defaultHistoryLimit = 5

// History keeps the fingerprints of the most recent boards for cycle
// detection. Boards themselves are never retained.
type History struct {
	hashes []string
	limit  int
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &History{limit: limit}
}

// Record appends a fingerprint, dropping the oldest past the limit.
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.limit {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash repeats one of the last three recorded
// states, i.e. the board is static or cycling with period 3 or less.
func (h *History) IsStagnant(hash string) bool {
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == hash {
			return true
		}
	}
	return false
}

func (h *History) Len() int { return len(h.hashes) }

func (h *History) Reset() { h.hashes = nil }
