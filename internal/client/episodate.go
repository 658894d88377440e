package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/Belphemur/TVShowInfo/internal/apperrors"
	"github.com/Belphemur/TVShowInfo/internal/config"
	"github.com/Belphemur/TVShowInfo/internal/models"
	"github.com/Belphemur/TVShowInfo/internal/parser"
)

// EpisodateSourceName is the configuration name of the Episodate source
const EpisodateSourceName = "episodate"

func init() {
	Register(EpisodateSourceName, func(httpClient *http.Client, cfg *config.Config) Source {
		return NewEpisodateSource(httpClient, cfg.Sources.Episodate.SearchURL, cfg.Sources.Episodate.DetailURL)
	})
}

// episodateSource queries Episodate. Its search only returns permalinks, every
// candidate is resolved with a second request to the show-details endpoint.
type episodateSource struct {
	httpClient   *http.Client
	searchURL    string
	detailURL    string
	searchParser parser.Parser[models.SearchCandidate]
	detailParser parser.SingleResultParser[*models.Show]
}

// NewEpisodateSource creates a new Episodate source
func NewEpisodateSource(httpClient *http.Client, searchURL, detailURL string) Source {
	if searchURL == "" {
		searchURL = config.DefaultEpisodateSearchURL
	}
	if detailURL == "" {
		detailURL = config.DefaultEpisodateDetailURL
	}
	return &episodateSource{
		httpClient:   httpClient,
		searchURL:    searchURL,
		detailURL:    detailURL,
		searchParser: parser.NewEpisodateSearchParser(),
		detailParser: parser.NewEpisodateDetailParser(),
	}
}

func (s *episodateSource) Name() string {
	return EpisodateSourceName
}

// Search resolves every candidate of the search endpoint, keeping the endpoint's relevance order.
func (s *episodateSource) Search(ctx context.Context, name string) ([]models.Show, error) {
	candidates, err := s.searchCandidates(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, candidates, len(candidates)), nil
}

// TopMatch returns the first candidate that resolves. The search endpoint already sorts by
// relevance, so candidates after the first resolved one are never fetched.
func (s *episodateSource) TopMatch(ctx context.Context, name string) (*models.Show, error) {
	candidates, err := s.searchCandidates(ctx, name)
	if err != nil {
		return nil, err
	}
	shows := s.resolve(ctx, candidates, 1)
	if len(shows) == 0 {
		return nil, nil
	}
	return &shows[0], nil
}

func (s *episodateSource) searchCandidates(ctx context.Context, name string) ([]models.SearchCandidate, error) {
	logger := config.GetLogger()

	endpoint, err := buildURL(s.searchURL, url.Values{"page": {"1"}, "q": {name}})
	if err != nil {
		return nil, err
	}

	var candidates []models.SearchCandidate
	err = fetchJSON(ctx, s.httpClient, endpoint, func(body io.Reader) error {
		var parseErr error
		candidates, parseErr = s.searchParser.Parse(body)
		return parseErr
	})

	var statusErr *apperrors.ErrUnexpectedStatus
	if errors.As(err, &statusErr) {
		logger.Info().Str("source", EpisodateSourceName).Int("status", statusErr.StatusCode).Msg("Search returned no results")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("source", EpisodateSourceName).Str("title", name).Int("candidates", len(candidates)).Msg("Search completed")
	return candidates, nil
}

// resolve fetches the details of candidates in order until limit shows are resolved.
// Candidates without permalink and failed or empty detail responses are skipped.
func (s *episodateSource) resolve(ctx context.Context, candidates []models.SearchCandidate, limit int) []models.Show {
	logger := config.GetLogger()

	var shows []models.Show
	for _, candidate := range candidates {
		if len(shows) >= limit || ctx.Err() != nil {
			break
		}
		if candidate.Permalink == "" {
			logger.Debug().Str("source", EpisodateSourceName).Str("candidate", candidate.Name).Msg("Skipping candidate without permalink")
			continue
		}

		show, err := s.fetchDetail(ctx, candidate.Permalink)
		if err != nil {
			logger.Warn().Err(err).Str("source", EpisodateSourceName).Str("permalink", candidate.Permalink).Msg("Skipping candidate, detail request failed")
			continue
		}
		if show == nil {
			logger.Debug().Str("source", EpisodateSourceName).Str("permalink", candidate.Permalink).Msg("Skipping candidate, empty detail response")
			continue
		}
		shows = append(shows, *show)
	}
	return shows
}

func (s *episodateSource) fetchDetail(ctx context.Context, permalink string) (*models.Show, error) {
	endpoint, err := buildURL(s.detailURL, url.Values{"q": {permalink}})
	if err != nil {
		return nil, err
	}

	var show *models.Show
	err = fetchJSON(ctx, s.httpClient, endpoint, func(body io.Reader) error {
		var parseErr error
		show, parseErr = s.detailParser.Parse(body)
		return parseErr
	})
	if errors.Is(err, &apperrors.ErrUnexpectedStatus{}) {
		return nil, nil
	}
	return show, err
}
