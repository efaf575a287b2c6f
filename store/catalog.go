// ABOUTME: In-memory book catalog with review storage
// ABOUTME: Thread-safe store seeded with a fixed book list at construction

package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/markalston/bookshelf/models"
)

// Catalog owns the fixed set of books and their reviews. All access goes
// through its methods; callers only ever see copies of the stored data.
type Catalog struct {
	mu    sync.RWMutex
	books map[int]*models.Book
}

// NewCatalog creates a catalog seeded with the fixed book list.
func NewCatalog() *Catalog {
	return &Catalog{books: seedBooks()}
}

// seedBooks returns the fixed catalog contents. Books are created without
// review maps; PutReview allocates them lazily.
func seedBooks() map[int]*models.Book {
	seed := []struct {
		isbn   int
		author string
		title  string
	}{
		{1, "Chinua Achebe", "Things Fall Apart"},
		{2, "Hans Christian Andersen", "Fairy tales"},
		{3, "Dante Alighieri", "The Divine Comedy"},
		{4, "Unknown", "The Epic Of Gilgamesh"},
		{5, "Unknown", "The Book Of Job"},
		{6, "Unknown", "One Thousand and One Nights"},
		{7, "Unknown", "Njal's Saga"},
		{8, "Jane Austen", "Pride and Prejudice"},
		{9, "Honore de Balzac", "Le Pere Goriot"},
		{10, "Samuel Beckett", "Molloy, Malone Dies, The Unnamable, the trilogy"},
	}

	books := make(map[int]*models.Book, len(seed))
	for _, s := range seed {
		books[s.isbn] = &models.Book{
			ISBN:   s.isbn,
			Author: s.author,
			Title:  s.title,
		}
	}
	return books
}

// All returns a snapshot of the full catalog keyed by ISBN.
func (c *Catalog) All() map[int]models.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make(map[int]models.Book, len(c.books))
	for isbn, b := range c.books {
		snapshot[isbn] = copyBook(b)
	}
	return snapshot
}

// Get returns the book with the given ISBN.
func (c *Catalog) Get(isbn int) (models.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	b, ok := c.books[isbn]
	if !ok {
		return models.Book{}, ErrBookNotFound
	}
	return copyBook(b), nil
}

// FindByAuthor returns books whose author contains the given substring,
// case-insensitively, ordered by title ascending.
func (c *Catalog) FindByAuthor(author string) []models.Book {
	needle := strings.ToLower(author)

	c.mu.RLock()
	matches := make([]models.Book, 0)
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Author), needle) {
			matches = append(matches, copyBook(b))
		}
	}
	c.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Title < matches[j].Title
	})
	return matches
}

// FindByTitle returns books whose title contains the given substring,
// case-insensitively, ordered by author ascending.
func (c *Catalog) FindByTitle(title string) []models.Book {
	needle := strings.ToLower(title)

	c.mu.RLock()
	matches := make([]models.Book, 0)
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			matches = append(matches, copyBook(b))
		}
	}
	c.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Author < matches[j].Author
	})
	return matches
}

// Reviews returns the review map for a book. A book with no reviews yields
// an empty map, not an error; ErrBookNotFound only when the ISBN is absent.
func (c *Catalog) Reviews(isbn int) (map[string]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	b, ok := c.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	return copyReviews(b.Reviews), nil
}

// PutReview sets or overwrites the review for username on the given book.
// The review map is allocated on first write.
func (c *Catalog) PutReview(isbn int, username, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.books[isbn]
	if !ok {
		return ErrBookNotFound
	}
	if b.Reviews == nil {
		b.Reviews = make(map[string]string)
	}
	b.Reviews[username] = text
	return nil
}

// DeleteReview removes the review authored by username from the given book.
// Returns ErrReviewNotFound when the book is absent or the user never
// reviewed it.
func (c *Catalog) DeleteReview(isbn int, username string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.books[isbn]
	if !ok {
		return ErrReviewNotFound
	}
	if _, ok := b.Reviews[username]; !ok {
		return ErrReviewNotFound
	}
	delete(b.Reviews, username)
	return nil
}

// Count returns the number of books in the catalog.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}

// copyBook returns a value copy of b with its own review map.
func copyBook(b *models.Book) models.Book {
	out := *b
	out.Reviews = copyReviews(b.Reviews)
	return out
}

// copyReviews copies a review map; a nil input yields an empty, non-nil map
// so JSON serialization produces {} rather than null.
func copyReviews(reviews map[string]string) map[string]string {
	out := make(map[string]string, len(reviews))
	for user, text := range reviews {
		out[user] = text
	}
	return out
}
