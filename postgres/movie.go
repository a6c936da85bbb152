package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"moviesearch/movie"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieModel represents the database model for movies
type MovieModel struct {
	ID          int64     `gorm:"primaryKey"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"not null;default:''"`
	Year        int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

func (m MovieModel) toMovie() movie.Movie {
	return movie.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Year:        m.Year,
		CreatedAt:   m.CreatedAt,
	}
}

// columns maps movie fields to their column names. Anything not listed
// here never reaches a query.
var columns = map[movie.Field]string{
	movie.FieldID:          "id",
	movie.FieldTitle:       "title",
	movie.FieldDescription: "description",
	movie.FieldYear:        "year",
	movie.FieldCreatedAt:   "created_at",
}

// MovieRepository implements movie.Repository interface
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) All(ctx context.Context) ([]movie.Movie, error) {
	var models []MovieModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return toMovies(models), nil
}

// FilterByTitle matches title case-insensitively. LIKE wildcards in term
// are matched literally.
func (r *MovieRepository) FilterByTitle(ctx context.Context, term string) ([]movie.Movie, error) {
	var models []MovieModel
	err := r.db.WithContext(ctx).
		Where("title ILIKE ?", containsPattern(term)).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toMovies(models), nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id int64) (movie.Movie, error) {
	var model MovieModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return movie.Movie{}, movie.ErrMovieNotFound
	}
	if err != nil {
		return movie.Movie{}, err
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) List(ctx context.Context, opts movie.ListOptions) ([]movie.Movie, error) {
	tx := r.db.WithContext(ctx).Model(&MovieModel{})

	if len(opts.SearchFields) > 0 {
		conds := make([]string, 0, len(opts.SearchFields))
		for _, f := range opts.SearchFields {
			col, ok := columns[f]
			if !ok {
				return nil, fmt.Errorf("postgres: unknown search field %q", f)
			}
			conds = append(conds, col+" ILIKE ?")
		}
		group := "(" + strings.Join(conds, " OR ") + ")"
		// every word has to match at least one search field
		for _, word := range strings.Fields(opts.Search) {
			args := make([]interface{}, len(conds))
			for i := range args {
				args[i] = containsPattern(word)
			}
			tx = tx.Where(group, args...)
		}
	}
	if opts.Year != 0 {
		tx = tx.Where("year = ?", opts.Year)
	}
	if !opts.CreatedAfter.IsZero() {
		tx = tx.Where("created_at >= ?", opts.CreatedAfter)
	}
	for _, o := range opts.Ordering {
		col, ok := columns[o.Field]
		if !ok {
			return nil, fmt.Errorf("postgres: unknown ordering field %q", o.Field)
		}
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: o.Desc})
	}

	var models []MovieModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, err
	}
	return toMovies(models), nil
}

// Import inserts movies in batches inside one transaction and returns
// how many rows were written. It is used by the catalog import tool only.
func (r *MovieRepository) Import(ctx context.Context, movies []movie.Movie, batchSize int) (int, error) {
	if len(movies) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	models := make([]MovieModel, len(movies))
	for i, m := range movies {
		models[i] = MovieModel{
			Title:       m.Title,
			Description: m.Description,
			Year:        m.Year,
			CreatedAt:   m.CreatedAt,
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(models, batchSize).Error
	})
	if err != nil {
		return 0, err
	}
	return len(models), nil
}

func toMovies(models []MovieModel) []movie.Movie {
	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = model.toMovie()
	}
	return movies
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term anywhere.
// Backslash is the default LIKE escape character in PostgreSQL. Invalid
// UTF-8 is replaced since PostgreSQL refuses it as a parameter.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToValidUTF8(term, "\uFFFD")) + "%"
}
