package deck

// SeedSamples adds the starter cards used when no deck file exists yet.
func (d *Deck) SeedSamples() {
	samples := []struct {
		question string
		answer   string
		tags     []string
	}{
		{"What is FIFO in queues?", "First In First Out", []string{"queue", "ds"}},
		{"How to handle collisions in hash map?", "Use chaining (linked lists) or open addressing", []string{"hashmap", "ds"}},
		{"What is enqueue operation?", "Insert element at the tail of queue", []string{"queue", "srs"}},
	}
	for _, s := range samples {
		// Sample content is static and valid; Add cannot fail here.
		_, _ = d.Add(s.question, s.answer, s.tags)
	}
}
