package httpserver

import (
	"time"

	"moviesearch/movie"
)

const dateLayout = "2006-01-02"

type ListMoviesRequest struct {
	Q            string `query:"q" validate:"max=200"`
	Year         int    `query:"year" validate:"omitempty,min=1800,max=3000"`
	CreatedAfter string `query:"created_after" validate:"omitempty,datetime=2006-01-02"`
}

func (r ListMoviesRequest) ToQuery() movie.ListQuery {
	q := movie.ListQuery{
		Search: validUTF8(r.Q),
		Year:   r.Year,
	}
	// already validated against dateLayout
	if t, err := time.Parse(dateLayout, r.CreatedAfter); err == nil {
		q.CreatedAfter = t
	}
	return q
}
