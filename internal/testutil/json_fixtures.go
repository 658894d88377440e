package testutil

import (
	"encoding/json"
	"strconv"
)

// StringPtr is a helper for creating *string values in tests
func StringPtr(v string) *string {
	return &v
}

// TVMazeResultOptions contains options for generating one element of a TVMaze search response.
// Zero values are omitted from the generated document.
type TVMazeResultOptions struct {
	Score       float64
	ID          int
	Name        string
	Summary     string
	Genres      []string
	ImageMedium string
	ImageOrig   string
	NetworkName string
	CountryCode string
	OmitShow    bool
}

// GenerateTVMazeSearchJSON generates a TVMaze /search/shows response body
func GenerateTVMazeSearchJSON(results []TVMazeResultOptions) string {
	elements := make([]map[string]any, 0, len(results))
	for _, r := range results {
		element := map[string]any{"score": r.Score}
		if !r.OmitShow {
			show := map[string]any{}
			if r.ID != 0 {
				show["id"] = r.ID
				show["url"] = "https://www.tvmaze.com/shows/" + strconv.Itoa(r.ID)
			}
			if r.Name != "" {
				show["name"] = r.Name
			}
			if r.Summary != "" {
				show["summary"] = r.Summary
			}
			if r.Genres != nil {
				show["genres"] = r.Genres
			}
			if r.ImageMedium != "" || r.ImageOrig != "" {
				image := map[string]any{}
				if r.ImageMedium != "" {
					image["medium"] = r.ImageMedium
				}
				if r.ImageOrig != "" {
					image["original"] = r.ImageOrig
				}
				show["image"] = image
			}
			if r.NetworkName != "" {
				network := map[string]any{"id": 1, "name": r.NetworkName}
				if r.CountryCode != "" {
					network["country"] = map[string]any{"name": "Country " + r.CountryCode, "code": r.CountryCode, "timezone": "America/New_York"}
				}
				show["network"] = network
			}
			element["show"] = show
		}
		elements = append(elements, element)
	}
	return mustMarshal(elements)
}

// EpisodateCandidateOptions contains options for generating one Episodate search hit
type EpisodateCandidateOptions struct {
	ID        int
	Name      string
	Permalink string
}

// GenerateEpisodateSearchJSON generates an Episodate /search response body
func GenerateEpisodateSearchJSON(candidates []EpisodateCandidateOptions) string {
	shows := make([]map[string]any, 0, len(candidates))
	for _, c := range candidates {
		shows = append(shows, map[string]any{
			"id":        c.ID,
			"name":      c.Name,
			"permalink": c.Permalink,
			"status":    "Running",
		})
	}
	return mustMarshal(map[string]any{
		"total":    strconv.Itoa(len(candidates)),
		"page":     1,
		"pages":    1,
		"tv_shows": shows,
	})
}

// EpisodateShowOptions contains options for generating an Episodate show-details document.
// Zero values are omitted from the generated document.
type EpisodateShowOptions struct {
	ID          int
	Name        string
	Permalink   string
	Description string
	Status      string
	Genres      []string
	Runtime     int
	Rating      string
	StartDate   string
	Image       string
	Thumbnail   string
}

// GenerateEpisodateDetailJSON generates an Episodate /show-details response body
func GenerateEpisodateDetailJSON(opts EpisodateShowOptions) string {
	show := map[string]any{}
	if opts.ID != 0 {
		show["id"] = opts.ID
	}
	if opts.Name != "" {
		show["name"] = opts.Name
	}
	if opts.Permalink != "" {
		show["permalink"] = opts.Permalink
		show["url"] = "https://www.episodate.com/tv-show/" + opts.Permalink
	}
	if opts.Description != "" {
		show["description"] = opts.Description
	}
	if opts.Status != "" {
		show["status"] = opts.Status
	}
	if opts.Genres != nil {
		show["genres"] = opts.Genres
	}
	if opts.Runtime != 0 {
		show["runtime"] = opts.Runtime
	}
	if opts.Rating != "" {
		show["rating"] = opts.Rating
	}
	if opts.StartDate != "" {
		show["start_date"] = opts.StartDate
	}
	if opts.Image != "" {
		show["image_path"] = opts.Image
	}
	if opts.Thumbnail != "" {
		show["image_thumbnail_path"] = opts.Thumbnail
	}
	return mustMarshal(map[string]any{"tvShow": show})
}

// EmptyEpisodateDetailJSON is what Episodate returns for an unknown permalink
const EmptyEpisodateDetailJSON = `{"tvShow":[]}`

func mustMarshal(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
