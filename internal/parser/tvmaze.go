package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Belphemur/TVShowInfo/internal/config"
	"github.com/Belphemur/TVShowInfo/internal/models"
)

// tvMazeResult is one element of the TVMaze /search/shows array
type tvMazeResult struct {
	Score *float64    `json:"score"`
	Show  *tvMazeShow `json:"show"`
}

type tvMazeShow struct {
	ID           *int             `json:"id"`
	URL          *string          `json:"url"`
	Name         *string          `json:"name"`
	Type         *string          `json:"type"`
	Language     *string          `json:"language"`
	Genres       []string         `json:"genres"`
	Status       *string          `json:"status"`
	Runtime      *int             `json:"runtime"`
	Premiered    *string          `json:"premiered"`
	OfficialSite *string          `json:"officialSite"`
	Schedule     *tvMazeSchedule  `json:"schedule"`
	Rating       *tvMazeRating    `json:"rating"`
	Weight       *int             `json:"weight"`
	Network      *tvMazeNetwork   `json:"network"`
	WebChannel   *tvMazeNetwork   `json:"webChannel"`
	Externals    *tvMazeExternals `json:"externals"`
	Image        *tvMazeImage     `json:"image"`
	Summary      *string          `json:"summary"`
	Updated      *int64           `json:"updated"`
	Links        *tvMazeLinks     `json:"_links"`
}

type tvMazeRating struct {
	Average *float64 `json:"average"`
}

type tvMazeSchedule struct {
	Time *string  `json:"time"`
	Days []string `json:"days"`
}

type tvMazeNetwork struct {
	ID      *int    `json:"id"`
	Name    *string `json:"name"`
	Country *struct {
		Name     *string `json:"name"`
		Code     *string `json:"code"`
		Timezone *string `json:"timezone"`
	} `json:"country"`
}

type tvMazeExternals struct {
	TVRage  *int    `json:"tvrage"`
	TheTVDB *int    `json:"thetvdb"`
	IMDB    *string `json:"imdb"`
}

type tvMazeImage struct {
	Small    *string `json:"small"`
	Medium   *string `json:"medium"`
	Large    *string `json:"large"`
	Original *string `json:"original"`
}

type tvMazeHref struct {
	Href *string `json:"href"`
}

type tvMazeLinks struct {
	Self            *tvMazeHref `json:"self"`
	PreviousEpisode *tvMazeHref `json:"previousepisode"`
	NextEpisode     *tvMazeHref `json:"nextepisode"`
}

// TVMazeSearchParser decodes the inline results of the TVMaze show search
type TVMazeSearchParser struct{}

// NewTVMazeSearchParser creates a new TVMaze search parser instance
func NewTVMazeSearchParser() Parser[models.Show] {
	return &TVMazeSearchParser{}
}

// Parse decodes the search response. Elements that are not JSON objects are skipped and
// members with an unexpected type are left absent. A document that is not a JSON array is an error.
func (p *TVMazeSearchParser) Parse(body io.Reader) ([]models.Show, error) {
	logger := config.GetLogger()

	var elements []json.RawMessage
	if err := json.NewDecoder(body).Decode(&elements); err != nil {
		return nil, fmt.Errorf("failed to decode TVMaze search response: %w", err)
	}

	shows := make([]models.Show, 0, len(elements))
	for i, raw := range elements {
		fields, ok := objectFields(raw)
		if !ok {
			logger.Debug().Int("index", i).Msg("Skipping malformed TVMaze search result")
			continue
		}
		result := tvMazeResult{Score: decodeField[*float64](fields, "score")}
		if showFields, ok := objectFields(fields["show"]); ok {
			result.Show = decodeTVMazeShow(showFields)
		}
		shows = append(shows, result.toShow())
	}

	logger.Debug().Int("results", len(elements)).Int("parsed", len(shows)).Msg("Parsed TVMaze search response")
	return shows, nil
}

func decodeTVMazeShow(fields map[string]json.RawMessage) *tvMazeShow {
	return &tvMazeShow{
		ID:           decodeField[*int](fields, "id"),
		URL:          decodeField[*string](fields, "url"),
		Name:         decodeField[*string](fields, "name"),
		Type:         decodeField[*string](fields, "type"),
		Language:     decodeField[*string](fields, "language"),
		Genres:       decodeField[[]string](fields, "genres"),
		Status:       decodeField[*string](fields, "status"),
		Runtime:      decodeField[*int](fields, "runtime"),
		Premiered:    decodeField[*string](fields, "premiered"),
		OfficialSite: decodeField[*string](fields, "officialSite"),
		Schedule:     decodeField[*tvMazeSchedule](fields, "schedule"),
		Rating:       decodeField[*tvMazeRating](fields, "rating"),
		Weight:       decodeField[*int](fields, "weight"),
		Network:      decodeField[*tvMazeNetwork](fields, "network"),
		WebChannel:   decodeField[*tvMazeNetwork](fields, "webChannel"),
		Externals:    decodeField[*tvMazeExternals](fields, "externals"),
		Image:        decodeField[*tvMazeImage](fields, "image"),
		Summary:      decodeField[*string](fields, "summary"),
		Updated:      decodeField[*int64](fields, "updated"),
		Links:        decodeField[*tvMazeLinks](fields, "_links"),
	}
}

func (r tvMazeResult) toShow() models.Show {
	show := models.Show{Source: "tvmaze"}
	if r.Score != nil {
		show.Score = *r.Score
	}
	s := r.Show
	if s == nil {
		return show
	}

	show.ID = s.ID
	show.URL = s.URL
	show.Name = s.Name
	show.Type = s.Type
	show.Language = s.Language
	show.Genres = s.Genres
	show.Status = s.Status
	show.Runtime = s.Runtime
	show.Premiered = s.Premiered
	show.OfficialSite = s.OfficialSite
	if s.Schedule != nil {
		show.Schedule = &models.Schedule{Time: s.Schedule.Time, Days: s.Schedule.Days}
	}
	if s.Rating != nil {
		show.Rating = s.Rating.Average
	}
	show.Weight = s.Weight
	show.Network = s.Network.toNetworkInfo()
	show.WebChannel = s.WebChannel.toNetworkInfo()
	if s.Externals != nil {
		show.Externals = &models.Externals{TVRage: s.Externals.TVRage, TheTVDB: s.Externals.TheTVDB, IMDB: s.Externals.IMDB}
	}
	if s.Image != nil {
		show.Image = models.ImageSet{Small: s.Image.Small, Medium: s.Image.Medium, Large: s.Image.Large, Original: s.Image.Original}
	}
	show.Summary = stripMarkupPtr(s.Summary)
	if s.Updated != nil {
		updated := time.Unix(*s.Updated, 0).UTC()
		show.Updated = &updated
	}
	if s.Links != nil {
		show.Links = &models.Links{
			Self:            s.Links.Self.href(),
			PreviousEpisode: s.Links.PreviousEpisode.href(),
			NextEpisode:     s.Links.NextEpisode.href(),
		}
	}
	return show
}

func (n *tvMazeNetwork) toNetworkInfo() *models.NetworkInfo {
	if n == nil {
		return nil
	}
	info := &models.NetworkInfo{ID: n.ID, Name: n.Name}
	if n.Country != nil {
		info.Country = &models.CountryInfo{Name: n.Country.Name, Code: n.Country.Code, Timezone: n.Country.Timezone}
	}
	return info
}

func (h *tvMazeHref) href() *string {
	if h == nil {
		return nil
	}
	return h.Href
}
