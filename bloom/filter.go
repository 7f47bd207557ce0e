// Package bloom provides quiz URL deduplication using Bloom filters.
// Category listings repeat sticky posts across pages, so discovery needs
// a seen-set; a Bloom filter keeps it constant-size for large categories.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// URLSet tracks URLs that discovery has already seen.
// A false positive drops a quiz from the run; the rate is chosen by the
// caller to make that unlikely.
type URLSet struct {
	f *bloom.BloomFilter
}

// NewURLSet creates a URL set sized for n expected URLs with the given
// false positive rate.
func NewURLSet(n uint, fpRate float64) *URLSet {
	return &URLSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a URL as seen.
func (s *URLSet) Add(url string) {
	s.f.AddString(url)
}

// Seen returns true if the URL might have been added.
// False positives are possible; false negatives are not.
func (s *URLSet) Seen(url string) bool {
	return s.f.TestString(url)
}

// ApproxLen returns the approximate number of URLs in the set.
func (s *URLSet) ApproxLen() uint {
	return uint(s.f.ApproximatedSize())
}
