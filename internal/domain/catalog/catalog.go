// internal/domain/catalog/catalog.go
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog is the in-memory, read-only product collaborator queried by the
// state managers and the HTTP surface.
type Catalog struct {
	products   []Product
	categories []Category
	byID       map[string]int
}

// Query describes a product listing request. Zero values mean "no filter".
type Query struct {
	Category string
	Search   string
	MinPrice int64
	MaxPrice int64
	Featured bool
	SortBy   string // price_asc, price_desc, rating, name
	Page     int
	Limit    int
}

// ListResult is a page of products plus the total match count.
type ListResult struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}

// New creates a catalog over the given products and categories.
func New(products []Product, categories []Category) *Catalog {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	return &Catalog{
		products:   products,
		categories: categories,
		byID:       byID,
	}
}

// GetProduct retrieves a product by id.
func (c *Catalog) GetProduct(id string) (*Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("product %q not found", id)
	}

	p := c.products[i]
	return &p, nil
}

// Categories returns all categories.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// List returns products matching the query, sorted and paginated.
func (c *Catalog) List(q Query) ListResult {
	matched := make([]Product, 0, len(c.products))
	search := strings.ToLower(strings.TrimSpace(q.Search))

	for _, p := range c.products {
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		if q.Featured && !p.Featured {
			continue
		}
		if q.MinPrice > 0 && p.Price < q.MinPrice {
			continue
		}
		if q.MaxPrice > 0 && p.Price > q.MaxPrice {
			continue
		}
		if search != "" && !matchesSearch(&p, search) {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, q.SortBy)

	total := len(matched)
	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = total
		if limit == 0 {
			limit = 1
		}
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return ListResult{
		Products: matched[start:end],
		Total:    total,
		Page:     page,
		Limit:    limit,
	}
}

func matchesSearch(p *Product, search string) bool {
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), search) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func sortProducts(products []Product, sortBy string) {
	switch sortBy {
	case "price_asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price_desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "rating":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	case "name":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	default:
		// Keep seed order: featured products first, then the rest.
	}
}
