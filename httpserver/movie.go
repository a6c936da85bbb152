package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"moviesearch/errs"
	"moviesearch/movie"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMoviePages(g *echo.Group) {
	g.GET("/", s.handleSearchPage, page)
	g.GET("/search", s.handleSearchPage, page)
	g.GET("/movie/:id", s.handleMovieDetailPage, page)
}

func (s *Server) RegisterMovieAPIRoutes(g *echo.Group) {
	g.GET("/movies", s.handleListMovies)
	g.GET("/movies/:id", s.handleGetMovie)
}

// handleSearchPage renders the catalog filtered by the searchMovie
// parameter. It never fails on an empty result.
func (s *Server) handleSearchPage(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	term := validUTF8(c.QueryParam("searchMovie"))
	movies, err := s.MovieService.Search(c.Request().Context(), term)
	if err != nil {
		return err
	}

	title := "All movies"
	if term != "" {
		title = "Search: " + term
	}
	return c.Render(http.StatusOK, "search.html", searchPage{
		Title:      title,
		SearchTerm: term,
		Movies:     movies,
	})
}

func (s *Server) handleMovieDetailPage(c echo.Context) error {
	detail, err := s.movieDetail(c)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "detail.html", detailPage{
		Title:  detail.Movie.Title,
		Detail: detail,
	})
}

// handleListMovies godoc
// @Summary List Movies
// @Description Administrative listing: search title/description, filter by year and creation date
// @Tags movies
// @Produce json
// @Param q query string false "Search term"
// @Param year query int false "Release year"
// @Param created_after query string false "YYYY-MM-DD"
// @Success 200 {array} movie.Movie
// @Failure 400 {object} APIResponse
// @Router /api/movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	var req ListMoviesRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	movies, err := s.MovieService.List(c.Request().Context(), req.ToQuery())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, movies)
}

// handleGetMovie godoc
// @Summary Movie Detail
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} movie.Detail
// @Failure 404 {object} APIResponse
// @Router /api/movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	detail, err := s.movieDetail(c)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, detail)
}

// movieDetail treats an id that is not a positive integer as a missing movie.
func (s *Server) movieDetail(c echo.Context) (movie.Detail, error) {
	if s.MovieService == nil {
		return movie.Detail{}, errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return movie.Detail{}, movie.ErrMovieNotFound
	}

	return s.MovieService.Detail(c.Request().Context(), id)
}

// validUTF8 replaces invalid byte sequences with U+FFFD.
func validUTF8(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}
