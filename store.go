package papers

import (
	"fmt"
	"sort"
	"sync"
)

// Store is the in-memory paper collection. Papers are kept in insertion
// order; slug lookup returns the first match so reprocessing the same
// filename does not shadow the original record. The store is safe for
// concurrent use even though the pipeline itself is synchronous.
type Store struct {
	mu     sync.RWMutex
	papers []*Paper
}

// NewStore creates an empty collection.
func NewStore() *Store {
	return &Store{}
}

// Add appends a paper to the collection.
func (s *Store) Add(paper *Paper) {
	if paper == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.papers = append(s.papers, paper)
}

// List returns the papers in insertion order. The slice is a copy; the
// records themselves are shared and immutable by contract.
func (s *Store) List() []*Paper {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Paper, len(s.papers))
	copy(out, s.papers)
	return out
}

// GetBySlug returns the first paper with the given slug.
func (s *Store) GetBySlug(slug string) (*Paper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, paper := range s.papers {
		if paper.Slug == slug {
			return paper, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPaperNotFound, slug)
}

// Slugs returns every stored slug in insertion order.
func (s *Store) Slugs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slugs := make([]string, len(s.papers))
	for i, paper := range s.papers {
		slugs[i] = paper.Slug
	}
	return slugs
}

// Len reports the number of stored papers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.papers)
}

// Clear removes every stored paper.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.papers = nil
}

// Categories returns the sorted, de-duplicated union of all paper tags.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]struct{}{}
	for _, paper := range s.papers {
		for _, tag := range paper.Tags {
			seen[tag] = struct{}{}
		}
	}

	categories := make([]string, 0, len(seen))
	for tag := range seen {
		categories = append(categories, tag)
	}
	sort.Strings(categories)
	return categories
}
