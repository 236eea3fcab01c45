package entities

import (
	"strings"
	"time"
)

type CampaignState string
type Country string
type Vertical string
type AdPlatform string
type Segment string

// DefaultCampaignName is used when a campaign is created without a name.
const DefaultCampaignName = "Untitled campaign"

const (
	StatePending      CampaignState = "pending"
	StateCreativeSent CampaignState = "creative_sent"
	StateActive       CampaignState = "active"
	StateArchived     CampaignState = "archived"
)

const (
	CountryPE Country = "PE"
	CountryCO Country = "CO"
)

const (
	VerticalMotoPassenger Vertical = "MOTOPER"
	VerticalMotoDelivery  Vertical = "MOTODEL"
	VerticalCargo         Vertical = "CARGO"
	VerticalCarPassenger  Vertical = "AUTOPER"
	VerticalB2B           Vertical = "B2B"
	VerticalPremier       Vertical = "PREMIER"
	VerticalComfort       Vertical = "CONFORT"
	VerticalDriverPro     Vertical = "YEGOPRO"
	VerticalOwnCar        Vertical = "YEGOMIAUTO"
	VerticalOwnMoto       Vertical = "YEGOMIMOTO"
)

const (
	PlatformFacebook  AdPlatform = "FB"
	PlatformTikTok    AdPlatform = "TT"
	PlatformInstagram AdPlatform = "IG"
	PlatformGoogle    AdPlatform = "GG"
	PlatformLinkedIn  AdPlatform = "LI"
)

const (
	SegmentAcquisition     Segment = "ACQUISITION"
	SegmentRetention       Segment = "RETENTION"
	SegmentWinback         Segment = "WINBACK"
	SegmentMoreViews       Segment = "MORE_VIEWS"
	SegmentMoreFollowers   Segment = "MORE_FOLLOWERS"
	SegmentProfileVisits   Segment = "PROFILE_VISITS"
)

// Campaign is the entity under lifecycle management. Metric fields are
// pointers: nil means "never supplied", which drives task derivation,
// while an explicit zero counts as supplied.
type Campaign struct {
	CampaignID         string
	Name               string
	Country            Country
	Vertical           Vertical
	Platform           AdPlatform
	Segment            Segment
	ExternalPlatformID string
	OwnerName          string
	OwnerInitials      string
	ShortDescription   string
	Objective          string
	Benefit            string
	Description        string
	ReportURL          string
	State              CampaignState

	// Traffic metrics, uploaded by the trafficker.
	Reach       *int64
	Clicks      *int64
	Leads       *int64
	WeeklySpend *float64
	CostPerLead *float64

	// Driver metrics, uploaded by the campaign owner.
	DriversRegistered       *int64
	DriversFirstRide        *int64
	CostPerDriverRegistered *float64
	CostPerDriverFirstRide  *float64

	ISOWeek   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasTrafficMetrics reports whether every trafficker metric was supplied.
func (c Campaign) HasTrafficMetrics() bool {
	return c.Reach != nil && c.Clicks != nil && c.Leads != nil && c.WeeklySpend != nil
}

// HasDriverMetrics reports whether both driver counts were supplied.
func (c Campaign) HasDriverMetrics() bool {
	return c.DriversRegistered != nil && c.DriversFirstRide != nil
}

// RecomputeCostPerLead refreshes the derived cost-per-lead when both
// operands are available. Zero leads leaves the previous value alone.
func (c *Campaign) RecomputeCostPerLead() {
	if c.WeeklySpend != nil && c.Leads != nil && *c.Leads > 0 {
		cost := *c.WeeklySpend / float64(*c.Leads)
		c.CostPerLead = &cost
	}
}

// NegativeMetricFields lists every metric that was supplied with a
// negative value. Archiving is rejected while this is non-empty.
func (c Campaign) NegativeMetricFields() []string {
	var fields []string
	checkInt := func(name string, v *int64) {
		if v != nil && *v < 0 {
			fields = append(fields, name)
		}
	}
	checkFloat := func(name string, v *float64) {
		if v != nil && *v < 0 {
			fields = append(fields, name)
		}
	}
	checkInt("reach", c.Reach)
	checkInt("clicks", c.Clicks)
	checkInt("leads", c.Leads)
	checkFloat("weekly_spend", c.WeeklySpend)
	checkFloat("cost_per_lead", c.CostPerLead)
	checkInt("drivers_registered", c.DriversRegistered)
	checkInt("drivers_first_ride", c.DriversFirstRide)
	checkFloat("cost_per_driver_registered", c.CostPerDriverRegistered)
	checkFloat("cost_per_driver_first_ride", c.CostPerDriverFirstRide)
	return fields
}

// CanTransitionTo enforces the monotonic forward lifecycle. The single
// backward move, archived to active, goes through the reactivate
// action and is not accepted here.
func (c Campaign) CanTransitionTo(next CampaignState) bool {
	if c.State == next {
		return true
	}
	order := map[CampaignState]int{
		StatePending:      0,
		StateCreativeSent: 1,
		StateActive:       2,
		StateArchived:     3,
	}
	from, okFrom := order[c.State]
	to, okTo := order[next]
	return okFrom && okTo && to > from
}

// OwnerInitialsFromName derives display initials from a full name,
// first word plus last word, uppercased ("Juan Perez" -> "JP").
func OwnerInitialsFromName(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return ""
	}
	initials := string([]rune(parts[0])[0])
	if len(parts) > 1 {
		initials += string([]rune(parts[len(parts)-1])[0])
	}
	return strings.ToUpper(initials)
}

func ParseCampaignState(value string) (CampaignState, bool) {
	switch CampaignState(strings.ToLower(strings.TrimSpace(value))) {
	case StatePending:
		return StatePending, true
	case StateCreativeSent:
		return StateCreativeSent, true
	case StateActive:
		return StateActive, true
	case StateArchived:
		return StateArchived, true
	default:
		return "", false
	}
}

func ParseCountry(value string) (Country, bool) {
	switch Country(strings.ToUpper(strings.TrimSpace(value))) {
	case CountryPE:
		return CountryPE, true
	case CountryCO:
		return CountryCO, true
	default:
		return "", false
	}
}

func ParseVertical(value string) (Vertical, bool) {
	candidate := Vertical(strings.ToUpper(strings.TrimSpace(value)))
	switch candidate {
	case VerticalMotoPassenger, VerticalMotoDelivery, VerticalCargo,
		VerticalCarPassenger, VerticalB2B, VerticalPremier,
		VerticalComfort, VerticalDriverPro, VerticalOwnCar, VerticalOwnMoto:
		return candidate, true
	default:
		return "", false
	}
}

func ParseAdPlatform(value string) (AdPlatform, bool) {
	candidate := AdPlatform(strings.ToUpper(strings.TrimSpace(value)))
	switch candidate {
	case PlatformFacebook, PlatformTikTok, PlatformInstagram, PlatformGoogle, PlatformLinkedIn:
		return candidate, true
	default:
		return "", false
	}
}

func ParseSegment(value string) (Segment, bool) {
	candidate := Segment(strings.ToUpper(strings.TrimSpace(value)))
	switch candidate {
	case SegmentAcquisition, SegmentRetention, SegmentWinback,
		SegmentMoreViews, SegmentMoreFollowers, SegmentProfileVisits:
		return candidate, true
	default:
		return "", false
	}
}
