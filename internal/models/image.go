package models

// ImageSet bundles the image resolutions a source may provide for a show.
type ImageSet struct {
	Small    *string `json:"small,omitempty"`
	Medium   *string `json:"medium,omitempty"`
	Large    *string `json:"large,omitempty"`
	Original *string `json:"original,omitempty"`
}

// FirstAvailable returns the first non-empty image URL, checking small, medium,
// large and original in that order.
func (i ImageSet) FirstAvailable() (string, bool) {
	for _, img := range []*string{i.Small, i.Medium, i.Large, i.Original} {
		if img != nil && *img != "" {
			return *img, true
		}
	}
	return "", false
}
