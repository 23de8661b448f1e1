package inventory

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Row is one tabular inventory row as it arrives from the source file.
type Row struct {
	Name     string
	Price    string
	Category string
}

// Record is an inventory entry enriched with derived search keys.
type Record struct {
	Name       string   `json:"name"`
	RawPrice   string   `json:"raw_price"`
	CleanPrice float64  `json:"clean_price"`
	Category   string   `json:"category"`
	Keywords   []string `json:"keywords"`
}

// HasKnownPrice reports whether CleanPrice is usable for price filtering.
// A price that failed to parse is stored as NaN and must be treated as unknown.
func (r *Record) HasKnownPrice() bool {
	return !math.IsNaN(r.CleanPrice) && !math.IsInf(r.CleanPrice, 0)
}

// Index holds the loaded inventory. It is built once at startup and read-only
// afterwards; Load replaces the whole snapshot atomically.
type Index struct {
	mu         sync.RWMutex
	records    []Record
	categories []string
}

func NewIndex() *Index {
	return &Index{}
}

// Load builds the index from raw rows. Calling it again with the same rows
// yields the same derived records (pure function of the input).
func (ix *Index) Load(rows []Row) {
	records := make([]Record, 0, len(rows))
	categorySet := make(map[string]bool)

	for _, row := range rows {
		record := Record{
			Name:       strings.TrimSpace(row.Name),
			RawPrice:   row.Price,
			CleanPrice: CleanPrice(row.Price),
			Category:   strings.TrimSpace(row.Category),
			Keywords:   ExtractKeywords(row.Name),
		}
		if record.Name == "" {
			continue
		}
		if record.Category != "" {
			categorySet[strings.ToLower(record.Category)] = true
		}
		records = append(records, record)
	}

	categories := make([]string, 0, len(categorySet))
	for c := range categorySet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	ix.mu.Lock()
	ix.records = records
	ix.categories = categories
	ix.mu.Unlock()
}

// All returns the loaded records in insertion order.
func (ix *Index) All() []Record {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.records
}

// Categories returns the distinct lower-cased categories, sorted.
func (ix *Index) Categories() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.categories
}

// FindByName returns the record whose name equals name (case-insensitive),
// or nil when no such record exists.
func (ix *Index) FindByName(name string) *Record {
	target := strings.ToLower(strings.TrimSpace(name))
	if target == "" {
		return nil
	}
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	for i := range ix.records {
		if strings.ToLower(ix.records[i].Name) == target {
			record := ix.records[i]
			return &record
		}
	}
	return nil
}

func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.records)
}

var nonPriceChars = regexp.MustCompile(`[^\d.]`)

// CleanPrice strips currency symbols and other non-numeric characters from a
// free-form price string. Unparseable prices come back as NaN, never as 0,
// so "unknown" and "free" stay distinguishable.
func CleanPrice(raw string) float64 {
	cleaned := nonPriceChars.ReplaceAllString(raw, "")
	if cleaned == "" {
		return math.NaN()
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

var stopWords = map[string]bool{
	"the":  true,
	"and":  true,
	"with": true,
}

// ExtractKeywords lower-cases the product name, splits on whitespace and
// drops stop words and tokens of length <= 2.
func ExtractKeywords(name string) []string {
	var keywords []string
	for _, token := range strings.Fields(strings.ToLower(name)) {
		if len(token) <= 2 || stopWords[token] {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}
