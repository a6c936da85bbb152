package movie

import "context"

type Service interface {
	Search(ctx context.Context, term string) ([]Movie, error)
	Detail(ctx context.Context, id int64) (Detail, error)
	List(ctx context.Context, q ListQuery) ([]Movie, error)
}

type Repository interface {
	All(ctx context.Context) ([]Movie, error)
	FilterByTitle(ctx context.Context, term string) ([]Movie, error)
	GetByID(ctx context.Context, id int64) (Movie, error)
	List(ctx context.Context, opts ListOptions) ([]Movie, error)
}

type Usecase struct {
	r   Repository
	cfg ListConfig
}

func NewUsecase(r Repository, cfg ListConfig) (*Usecase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Usecase{r: r, cfg: cfg}, nil
}

// Search returns the movies whose title contains term, ignoring case.
// An empty term returns the whole catalog.
func (uc *Usecase) Search(ctx context.Context, term string) ([]Movie, error) {
	if term == "" {
		return uc.r.All(ctx)
	}
	return uc.r.FilterByTitle(ctx, term)
}

func (uc *Usecase) Detail(ctx context.Context, id int64) (Detail, error) {
	if id <= 0 {
		return Detail{}, ErrMovieNotFound
	}
	m, err := uc.r.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	return NewDetail(m), nil
}

func (uc *Usecase) List(ctx context.Context, q ListQuery) ([]Movie, error) {
	if q.Year < 0 {
		return nil, ErrInvalidYear
	}
	return uc.r.List(ctx, ListOptions{
		ListQuery:    q,
		SearchFields: uc.cfg.SearchFields,
		Ordering:     parseOrdering(uc.cfg.Ordering),
	})
}
