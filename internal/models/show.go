package models

import "time"

// Show represents a TV show as returned by any of the show sources.
// Every attribute is optional: a nil field means the source did not provide it.
type Show struct {
	ID           *int         `json:"id,omitempty"`
	URL          *string      `json:"url,omitempty"`
	Name         *string      `json:"name,omitempty"`
	Type         *string      `json:"type,omitempty"`
	Language     *string      `json:"language,omitempty"`
	Genres       []string     `json:"genres,omitempty"`
	Status       *string      `json:"status,omitempty"`
	Runtime      *int         `json:"runtime,omitempty"`
	Premiered    *string      `json:"premiered,omitempty"`
	OfficialSite *string      `json:"officialSite,omitempty"`
	Schedule     *Schedule    `json:"schedule,omitempty"`
	Rating       *float64     `json:"rating,omitempty"`
	Weight       *int         `json:"weight,omitempty"`
	Network      *NetworkInfo `json:"network,omitempty"`
	WebChannel   *NetworkInfo `json:"webChannel,omitempty"`
	Externals    *Externals   `json:"externals,omitempty"`
	Image        ImageSet     `json:"image"`
	Summary      *string      `json:"summary,omitempty"` // plain text, markup already stripped
	Updated      *time.Time   `json:"updated,omitempty"`
	Links        *Links       `json:"links,omitempty"`

	// Score ranks candidates returned by a single query. Zero when the source has no scoring.
	Score float64 `json:"score"`
	// Source is the name of the source that produced the record.
	Source string `json:"source,omitempty"`
}

// Schedule describes when a show airs
type Schedule struct {
	Time *string  `json:"time,omitempty"`
	Days []string `json:"days,omitempty"`
}

// Externals holds cross references to other show databases
type Externals struct {
	TVRage  *int    `json:"tvrage,omitempty"`
	TheTVDB *int    `json:"thetvdb,omitempty"`
	IMDB    *string `json:"imdb,omitempty"`
}

// Links holds related API links of a show
type Links struct {
	Self            *string `json:"self,omitempty"`
	PreviousEpisode *string `json:"previousEpisode,omitempty"`
	NextEpisode     *string `json:"nextEpisode,omitempty"`
}

// DisplayName returns the show name, or an empty string when the source did not provide one.
func (s *Show) DisplayName() string {
	if s == nil || s.Name == nil {
		return ""
	}
	return *s.Name
}

// Description is an alias for the plain-text summary. Empty when absent.
func (s *Show) Description() string {
	if s == nil || s.Summary == nil {
		return ""
	}
	return *s.Summary
}
