package datatable

// Bucket is one label of an aggregation.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Counts is the result of CountBy.
type Counts struct {
	Field   string   `json:"field"`
	Label   string   `json:"label"`
	Buckets []Bucket `json:"buckets"`
	Total   int      `json:"total"`
}

// CountBy groups rows by f in a single pass. Declared options come first,
// zero-filled, followed by any other values in first-seen order.
func CountBy[T any](rows []T, f Field[T]) Counts {
	c := Counts{Field: f.Name, Label: f.Label, Total: len(rows)}
	index := make(map[string]int, len(f.Options))
	for _, opt := range f.Options {
		if _, ok := index[opt]; ok {
			continue
		}
		index[opt] = len(c.Buckets)
		c.Buckets = append(c.Buckets, Bucket{Label: opt})
	}
	for _, r := range rows {
		v := f.Value(r)
		i, ok := index[v]
		if !ok {
			i = len(c.Buckets)
			index[v] = i
			c.Buckets = append(c.Buckets, Bucket{Label: v})
		}
		c.Buckets[i].Count++
	}
	if c.Buckets == nil {
		c.Buckets = []Bucket{}
	}
	return c
}

// Get returns the count for label, zero when absent.
func (c Counts) Get(label string) int {
	for _, b := range c.Buckets {
		if b.Label == label {
			return b.Count
		}
	}
	return 0
}

// Sum adds every bucket. It always equals Total.
func (c Counts) Sum() int {
	n := 0
	for _, b := range c.Buckets {
		n += b.Count
	}
	return n
}

// CountAll runs CountBy for every configured aggregation.
func (s Spec[T]) CountAll(rows []T) []Counts {
	out := make([]Counts, 0, len(s.Counts))
	for _, f := range s.Counts {
		out = append(out, CountBy(rows, f))
	}
	return out
}
