package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Belphemur/TVShowInfo/internal/config"
	"github.com/Belphemur/TVShowInfo/internal/models"
)

type episodateSearchResponse struct {
	TVShows []struct {
		ID        *int    `json:"id"`
		Name      *string `json:"name"`
		Permalink *string `json:"permalink"`
	} `json:"tv_shows"`
}

type episodateDetailResponse struct {
	TVShow json.RawMessage `json:"tvShow"`
}

type episodateShow struct {
	ID                 *int            `json:"id"`
	URL                *string         `json:"url"`
	Name               *string         `json:"name"`
	Description        *string         `json:"description"`
	Status             *string         `json:"status"`
	Genres             []string        `json:"genres"`
	Runtime            *int            `json:"runtime"`
	StartDate          *string         `json:"start_date"`
	Rating             json.RawMessage `json:"rating"`
	ImagePath          *string         `json:"image_path"`
	ImageThumbnailPath *string         `json:"image_thumbnail_path"`
}

// EpisodateSearchParser decodes the candidate list of the Episodate search endpoint
type EpisodateSearchParser struct{}

// NewEpisodateSearchParser creates a new Episodate search parser instance
func NewEpisodateSearchParser() Parser[models.SearchCandidate] {
	return &EpisodateSearchParser{}
}

// Parse returns the candidates in response order. Candidates without a permalink are kept,
// deciding what to do with them is up to the caller.
func (p *EpisodateSearchParser) Parse(body io.Reader) ([]models.SearchCandidate, error) {
	var response episodateSearchResponse
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode Episodate search response: %w", err)
	}

	candidates := make([]models.SearchCandidate, 0, len(response.TVShows))
	for _, s := range response.TVShows {
		candidate := models.SearchCandidate{ID: s.ID}
		if s.Name != nil {
			candidate.Name = *s.Name
		}
		if s.Permalink != nil {
			candidate.Permalink = strings.TrimSpace(*s.Permalink)
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// EpisodateDetailParser decodes an Episodate show-details document
type EpisodateDetailParser struct{}

// NewEpisodateDetailParser creates a new Episodate detail parser instance
func NewEpisodateDetailParser() SingleResultParser[*models.Show] {
	return &EpisodateDetailParser{}
}

// Parse returns nil without error when the document carries no show. Episodate answers
// unknown permalinks with {"tvShow": []}.
func (p *EpisodateDetailParser) Parse(body io.Reader) (*models.Show, error) {
	logger := config.GetLogger()

	var response episodateDetailResponse
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode Episodate detail response: %w", err)
	}

	raw := bytes.TrimSpace(response.TVShow)
	if len(raw) == 0 || raw[0] != '{' {
		logger.Debug().Msg("Episodate detail response has no show")
		return nil, nil
	}

	fields, ok := objectFields(raw)
	if !ok {
		return nil, errors.New("failed to decode Episodate show: not a JSON object")
	}
	if len(fields) == 0 {
		logger.Debug().Msg("Episodate detail response has an empty show")
		return nil, nil
	}

	s := episodateShow{
		ID:                 decodeField[*int](fields, "id"),
		URL:                decodeField[*string](fields, "url"),
		Name:               decodeField[*string](fields, "name"),
		Description:        decodeField[*string](fields, "description"),
		Status:             decodeField[*string](fields, "status"),
		Genres:             decodeField[[]string](fields, "genres"),
		Runtime:            decodeField[*int](fields, "runtime"),
		StartDate:          decodeField[*string](fields, "start_date"),
		Rating:             fields["rating"],
		ImagePath:          decodeField[*string](fields, "image_path"),
		ImageThumbnailPath: decodeField[*string](fields, "image_thumbnail_path"),
	}

	return s.toShow(), nil
}

func (s episodateShow) toShow() *models.Show {
	return &models.Show{
		ID:        s.ID,
		URL:       s.URL,
		Name:      s.Name,
		Summary:   stripMarkupPtr(s.Description),
		Status:    s.Status,
		Genres:    s.Genres,
		Runtime:   s.Runtime,
		Premiered: s.StartDate,
		Rating:    parseLooseFloat(s.Rating),
		Image: models.ImageSet{
			Small:  s.ImageThumbnailPath,
			Medium: s.ImagePath,
		},
		Source: "episodate",
	}
}

// parseLooseFloat accepts a JSON number or a numeric string, anything else is absent.
func parseLooseFloat(raw json.RawMessage) *float64 {
	value := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if value == "" || value == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}
