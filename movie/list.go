package movie

import (
	"fmt"
	"strings"
	"time"
)

// Field names a movie attribute usable in a ListConfig.
type Field string

const (
	FieldID          Field = "id"
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldYear        Field = "year"
	FieldCreatedAt   Field = "created_at"
)

var knownFields = map[Field]bool{
	FieldID:          true,
	FieldTitle:       true,
	FieldDescription: true,
	FieldYear:        true,
	FieldCreatedAt:   true,
}

// ListConfig describes the administrative listing of the catalog:
// which text fields a search term is matched against and how results
// are ordered. A leading "-" on an ordering entry sorts descending.
type ListConfig struct {
	SearchFields []Field
	Ordering     []string
}

var DefaultListConfig = ListConfig{
	SearchFields: []Field{FieldTitle, FieldDescription},
	Ordering:     []string{"-year", "title"},
}

func (c ListConfig) Validate() error {
	for _, f := range c.SearchFields {
		if f != FieldTitle && f != FieldDescription {
			return fmt.Errorf("movie: %q is not a searchable field", f)
		}
	}
	for _, o := range c.Ordering {
		if !knownFields[Field(strings.TrimPrefix(o, "-"))] {
			return fmt.Errorf("movie: cannot order by %q", o)
		}
	}
	return nil
}

// ListQuery holds the caller-supplied filters of a listing.
// Zero values mean "no filter".
type ListQuery struct {
	Search       string
	Year         int
	CreatedAfter time.Time
}

// ListOptions is what a Repository receives for a listing.
type ListOptions struct {
	ListQuery
	SearchFields []Field
	Ordering     []Order
}

type Order struct {
	Field Field
	Desc  bool
}

func parseOrdering(ordering []string) []Order {
	orders := make([]Order, 0, len(ordering))
	for _, o := range ordering {
		orders = append(orders, Order{
			Field: Field(strings.TrimPrefix(o, "-")),
			Desc:  strings.HasPrefix(o, "-"),
		})
	}
	return orders
}
