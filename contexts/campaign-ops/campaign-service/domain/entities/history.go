package entities

import "time"

// WeeklyRecord is one row of the metrics ledger, keyed by campaign and
// ISO week. Uniqueness of the pair is a soft invariant kept by the
// upsert path, not by a schema constraint.
type WeeklyRecord struct {
	RecordID   string
	CampaignID string
	ISOWeek    int
	SnapshotAt time.Time
	RecordedBy string

	Reach       *int64
	Clicks      *int64
	Leads       *int64
	WeeklySpend *float64
	CostPerLead *float64

	DriversRegistered       *int64
	DriversFirstRide        *int64
	CostPerDriverRegistered *float64
	CostPerDriverFirstRide  *float64

	CreatedAt time.Time
}

// MergeFrom copies every non-nil metric from incoming over the
// receiver, leaving fields the incoming snapshot did not supply
// untouched. Snapshot date and recorder always follow the incoming
// record.
func (r *WeeklyRecord) MergeFrom(incoming WeeklyRecord) {
	r.SnapshotAt = incoming.SnapshotAt
	if incoming.RecordedBy != "" {
		r.RecordedBy = incoming.RecordedBy
	}
	if incoming.Reach != nil {
		r.Reach = incoming.Reach
	}
	if incoming.Clicks != nil {
		r.Clicks = incoming.Clicks
	}
	if incoming.Leads != nil {
		r.Leads = incoming.Leads
	}
	if incoming.WeeklySpend != nil {
		r.WeeklySpend = incoming.WeeklySpend
	}
	if incoming.CostPerLead != nil {
		r.CostPerLead = incoming.CostPerLead
	}
	if incoming.DriversRegistered != nil {
		r.DriversRegistered = incoming.DriversRegistered
	}
	if incoming.DriversFirstRide != nil {
		r.DriversFirstRide = incoming.DriversFirstRide
	}
	if incoming.CostPerDriverRegistered != nil {
		r.CostPerDriverRegistered = incoming.CostPerDriverRegistered
	}
	if incoming.CostPerDriverFirstRide != nil {
		r.CostPerDriverFirstRide = incoming.CostPerDriverFirstRide
	}
}

// SnapshotFromCampaign builds a ledger row from a campaign's current
// metric fields. Driver cost fields are derived as spend over count
// when both operands are present and the count is positive.
func SnapshotFromCampaign(c Campaign, week int, snapshotAt time.Time, recordedBy string) WeeklyRecord {
	record := WeeklyRecord{
		CampaignID:              c.CampaignID,
		ISOWeek:                 week,
		SnapshotAt:              snapshotAt,
		RecordedBy:              recordedBy,
		Reach:                   c.Reach,
		Clicks:                  c.Clicks,
		Leads:                   c.Leads,
		WeeklySpend:             c.WeeklySpend,
		CostPerLead:             c.CostPerLead,
		DriversRegistered:       c.DriversRegistered,
		DriversFirstRide:        c.DriversFirstRide,
		CostPerDriverRegistered: c.CostPerDriverRegistered,
		CostPerDriverFirstRide:  c.CostPerDriverFirstRide,
	}
	if c.WeeklySpend != nil {
		if c.DriversRegistered != nil && *c.DriversRegistered > 0 {
			cost := *c.WeeklySpend / float64(*c.DriversRegistered)
			record.CostPerDriverRegistered = &cost
		}
		if c.DriversFirstRide != nil && *c.DriversFirstRide > 0 {
			cost := *c.WeeklySpend / float64(*c.DriversFirstRide)
			record.CostPerDriverFirstRide = &cost
		}
	}
	return record
}
