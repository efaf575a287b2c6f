// ABOUTME: Public catalog endpoints: listing, ISBN lookup, search, reviews
// ABOUTME: Search results are cached with concurrent lookups collapsed via singleflight

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/markalston/bookshelf/models"
)

// ListBooks returns the full catalog keyed by ISBN.
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.All())
}

// GetBookByISBN returns a single book. Unknown and non-numeric ISBNs both
// report not found, echoing the requested value in the message.
func (h *Handler) GetBookByISBN(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("isbn")

	isbn, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, fmt.Sprintf("Book with ISBN %s not found", raw), http.StatusNotFound)
		return
	}

	book, err := h.catalog.Get(isbn)
	if err != nil {
		writeError(w, fmt.Sprintf("Book with ISBN %s not found", raw), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, book)
}

// SearchByAuthor returns books whose author contains the path segment.
// Zero matches report not found rather than an empty success.
func (h *Handler) SearchByAuthor(w http.ResponseWriter, r *http.Request) {
	author := r.PathValue("author")

	books := h.cachedSearch("author:"+strings.ToLower(author), func() []models.Book {
		return h.catalog.FindByAuthor(author)
	})

	if len(books) == 0 {
		writeError(w, fmt.Sprintf("No books found for author %s", author), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, books)
}

// SearchByTitle returns books whose title contains the path segment.
// Zero matches report not found rather than an empty success.
func (h *Handler) SearchByTitle(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	books := h.cachedSearch("title:"+strings.ToLower(title), func() []models.Book {
		return h.catalog.FindByTitle(title)
	})

	if len(books) == 0 {
		writeError(w, fmt.Sprintf("No books found for title %s", title), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, books)
}

// GetReviews returns the review map for a book. A book with no reviews
// yields an empty object; only an unknown ISBN is an error.
func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("isbn")

	isbn, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, fmt.Sprintf("Book with ISBN %s not found", raw), http.StatusNotFound)
		return
	}

	reviews, err := h.catalog.Reviews(isbn)
	if err != nil {
		writeError(w, fmt.Sprintf("Book with ISBN %s not found", raw), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

// cachedSearch serves search results from the cache, collapsing concurrent
// identical lookups into one catalog scan. Cache keys carry the current
// search generation, so entries cached before a review mutation are never
// served afterwards; the stale generation simply ages out by TTL.
func (h *Handler) cachedSearch(key string, lookup func() []models.Book) []models.Book {
	cacheKey := fmt.Sprintf("search:%d:%s", h.searchGen.Load(), key)

	if cached, found := h.cache.Get(cacheKey); found {
		slog.Debug("Search cache hit", "key", cacheKey)
		return cached.([]models.Book)
	}

	v, _, _ := h.search.Do(cacheKey, func() (interface{}, error) {
		books := lookup()
		h.cache.Set(cacheKey, books, time.Duration(h.cfg.SearchCacheTTL)*time.Second)
		return books, nil
	})

	return v.([]models.Book)
}

// invalidateSearches retires every cached search result by moving to a new
// cache key generation. Called after review mutations so search responses
// always embed the current review state.
func (h *Handler) invalidateSearches() {
	h.searchGen.Add(1)
}
