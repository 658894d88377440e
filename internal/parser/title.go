package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// episodeMarkerPattern matches "<title> S<season>E<episode>". The greedy title
// group means the last marker wins when several are present. Separators and digits
// are matched in their Unicode sense, so a no-break space before the marker counts.
var episodeMarkerPattern = regexp.MustCompile(`^(.+)[\s\p{Z}]+(S\p{Nd}+E\p{Nd}+)`)

// TitleInfo is a user supplied show identifier split into its parts
type TitleInfo struct {
	Title   string // bare title used to query the show sources
	Episode string // episode marker such as S01E02, empty when none was given
}

// ParseTitle splits an optional episode marker off a free-text show identifier.
// When the input does not contain a marker the whole input is the title.
func ParseTitle(input string) TitleInfo {
	matches := episodeMarkerPattern.FindStringSubmatch(input)
	if len(matches) < 3 {
		return TitleInfo{Title: normalizeTitle(input)}
	}
	return TitleInfo{
		Title:   normalizeTitle(matches[1]),
		Episode: matches[2],
	}
}

func normalizeTitle(title string) string {
	return norm.NFC.String(strings.TrimSpace(title))
}
