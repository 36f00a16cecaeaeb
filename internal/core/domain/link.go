package domain

// Link is an external URL categorised by a free-form entity key.
type Link struct {
	ID           ID     `json:"id"`
	Entity       string `json:"entity"`
	LinkType     string `json:"linkType,omitempty"`
	URL          string `json:"url"`
	ShowToClient bool   `json:"showToClient"`
	Timestamps
}

// LinkType is a link-type catalog entry. Its Entity string is what clients reference via Client.LinkType.
type LinkType struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Entity string `json:"entity"`
	Timestamps
}

// ChatPreference stores a user's notification channel choices.
type ChatPreference struct {
	ID            ID     `json:"id,omitempty"`
	UserID        ID     `json:"userId,omitempty"`
	EmailEnabled  bool   `json:"emailEnabled"`
	SMSEnabled    bool   `json:"smsEnabled"`
	DigestCadence string `json:"digestCadence,omitempty"`
}
