package wl

// Compressor maps arbitrary label keys onto the dense range 0..Len()-1 in
// first-occurrence order. Equal keys always map to equal integers until Reset.
//
// A Compressor is not safe for concurrent use.
type Compressor struct {
	index map[string]int
	keys  []string
}

// NewCompressor returns an empty Compressor.
func NewCompressor() *Compressor {
	return &Compressor{index: make(map[string]int)}
}

// Label returns the integer for key, assigning the next free one if key is new.
func (c *Compressor) Label(key string) int {
	if id, ok := c.index[key]; ok {
		return id
	}
	id := len(c.keys)
	c.index[key] = id
	c.keys = append(c.keys, key)

	return id
}

// Compress maps every key in order; the mapping accumulates across calls.
//
// Complexity: O(len(keys)) expected.
func (c *Compressor) Compress(keys []string) []int {
	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = c.Label(k)
	}

	return out
}

// Lookup returns the integer already assigned to key.
func (c *Compressor) Lookup(key string) (int, bool) {
	id, ok := c.index[key]
	return id, ok
}

// Key returns the key that was assigned integer id.
func (c *Compressor) Key(id int) (string, bool) {
	if id < 0 || id >= len(c.keys) {
		return "", false
	}

	return c.keys[id], true
}

// Len returns the number of distinct keys seen so far.
func (c *Compressor) Len() int { return len(c.keys) }

// Reset forgets every mapping; the next key gets 0 again.
func (c *Compressor) Reset() {
	c.index = make(map[string]int)
	c.keys = nil
}
