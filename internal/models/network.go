package models

// NetworkInfo describes the network or web channel broadcasting a show
type NetworkInfo struct {
	ID      *int         `json:"id,omitempty"`
	Name    *string      `json:"name,omitempty"`
	Country *CountryInfo `json:"country,omitempty"`
}

// CountryInfo describes the country a network belongs to
type CountryInfo struct {
	Name     *string `json:"name,omitempty"`
	Code     *string `json:"code,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}
