package entities

import (
	"strings"
	"time"
)

// MaxActiveCreatives caps how many creatives may be live on one
// campaign at a time. Enforced at activation, not in the schema.
const MaxActiveCreatives = 5

// Creative is one asset attached to a campaign. Content lives either
// behind ExternalURL or, for rows that predate external hosting, in
// the inline base64 payload.
type Creative struct {
	CreativeID    string
	CampaignID    string
	FileName      string
	ExternalURL   string
	InlinePayload string
	Active        bool
	Position      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasContent reports whether the creative carries anything to push to
// the ad platform.
func (c Creative) HasContent() bool {
	return strings.TrimSpace(c.ExternalURL) != "" || strings.TrimSpace(c.InlinePayload) != ""
}
