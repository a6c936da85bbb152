package movie

import (
	"time"

	"moviesearch/errs"
)

var (
	ErrMovieNotFound = errs.Errorf(errs.ENOTFOUND, "movie not found")
	ErrInvalidYear   = errs.Errorf(errs.EINVALID, "movie: invalid year")
)

type Movie struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Year        int       `json:"year"`
	CreatedAt   time.Time `json:"created_at"`
}

// Review is a viewer's review of a movie. The catalog has no review store,
// so a Detail always carries an empty list.
type Review struct {
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type Detail struct {
	Movie   Movie    `json:"movie"`
	Reviews []Review `json:"reviews"`
}

func NewDetail(m Movie) Detail {
	return Detail{
		Movie:   m,
		Reviews: []Review{},
	}
}
