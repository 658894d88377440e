package notifier

import (
	"fmt"

	"github.com/Belphemur/TVShowInfo/internal/models"
)

// Slack message identity and attachment color
const (
	Username        = "TVShowInfo"
	IconEmoji       = ":tv:"
	AttachmentColor = "#36a64f"
)

// Payload is the Slack incoming webhook request body
type Payload struct {
	Username    string       `json:"username"`
	IconEmoji   string       `json:"icon_emoji"`
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is a Slack message attachment. Text is null when the show has no summary.
type Attachment struct {
	Fallback string  `json:"fallback"`
	Color    string  `json:"color"`
	Pretext  string  `json:"pretext"`
	Text     *string `json:"text"`
	ImageURL string  `json:"image_url,omitempty"`
}

// Format builds the message for a lookup. Without a matched show the message only carries
// the query as typed by the user.
func Format(query, episode string, show *models.Show) Payload {
	payload := Payload{
		Username:  Username,
		IconEmoji: IconEmoji,
	}
	if show == nil {
		payload.Text = query
		return payload
	}

	title := fmt.Sprintf("%s - %s (original title: %s)", show.DisplayName(), episode, query)
	attachment := Attachment{
		Fallback: title,
		Color:    AttachmentColor,
		Pretext:  title,
		Text:     show.Summary,
	}
	if imageURL, ok := show.Image.FirstAvailable(); ok {
		attachment.ImageURL = imageURL
	}
	payload.Attachments = []Attachment{attachment}
	return payload
}
