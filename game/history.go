package game

// historySize is how many recent generations are remembered for cycle detection
const historySize = 5

// History remembers the hashes of recent generations
type History struct {
	hashes []string
}

// Record adds a generation hash, dropping the oldest past historySize
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash repeats one of the last three recorded
// generations: a still life or an oscillator of period 2 or 3.
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}
	return false
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}
