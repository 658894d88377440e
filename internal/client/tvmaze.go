package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"sort"

	"github.com/Belphemur/TVShowInfo/internal/apperrors"
	"github.com/Belphemur/TVShowInfo/internal/config"
	"github.com/Belphemur/TVShowInfo/internal/models"
	"github.com/Belphemur/TVShowInfo/internal/parser"
)

// TVMazeSourceName is the configuration name of the TVMaze source
const TVMazeSourceName = "tvmaze"

func init() {
	Register(TVMazeSourceName, func(httpClient *http.Client, cfg *config.Config) Source {
		return NewTVMazeSource(httpClient, cfg.Sources.TVMaze.SearchURL)
	})
}

// tvMazeSource queries TVMaze, whose search embeds the full show in every result.
type tvMazeSource struct {
	httpClient *http.Client
	searchURL  string
	parser     parser.Parser[models.Show]
}

// NewTVMazeSource creates a new TVMaze source
func NewTVMazeSource(httpClient *http.Client, searchURL string) Source {
	if searchURL == "" {
		searchURL = config.DefaultTVMazeSearchURL
	}
	return &tvMazeSource{
		httpClient: httpClient,
		searchURL:  searchURL,
		parser:     parser.NewTVMazeSearchParser(),
	}
}

func (s *tvMazeSource) Name() string {
	return TVMazeSourceName
}

// Search returns the shows in the order TVMaze sent them.
func (s *tvMazeSource) Search(ctx context.Context, name string) ([]models.Show, error) {
	logger := config.GetLogger()

	endpoint, err := buildURL(s.searchURL, url.Values{"q": {name}})
	if err != nil {
		return nil, err
	}

	var shows []models.Show
	err = fetchJSON(ctx, s.httpClient, endpoint, func(body io.Reader) error {
		var parseErr error
		shows, parseErr = s.parser.Parse(body)
		return parseErr
	})

	var statusErr *apperrors.ErrUnexpectedStatus
	if errors.As(err, &statusErr) {
		logger.Info().Str("source", TVMazeSourceName).Int("status", statusErr.StatusCode).Msg("Search returned no results")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("source", TVMazeSourceName).Str("title", name).Int("results", len(shows)).Msg("Search completed")
	return shows, nil
}

// TopMatch returns the highest scored show. Ties keep the order TVMaze sent them in.
func (s *tvMazeSource) TopMatch(ctx context.Context, name string) (*models.Show, error) {
	shows, err := s.Search(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(shows) == 0 {
		return nil, nil
	}

	sort.SliceStable(shows, func(i, j int) bool {
		return shows[i].Score > shows[j].Score
	})
	return &shows[0], nil
}
