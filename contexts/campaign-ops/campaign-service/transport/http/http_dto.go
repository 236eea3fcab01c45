package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateCampaignRequest struct {
	Name               string `json:"name"`
	Country            string `json:"country"`
	Vertical           string `json:"vertical"`
	Platform           string `json:"platform"`
	Segment            string `json:"segment"`
	ExternalPlatformID string `json:"external_platform_id"`
	OwnerName          string `json:"owner_name"`
	ShortDescription   string `json:"short_description"`
	Objective          string `json:"objective"`
	Benefit            string `json:"benefit"`
	Description        string `json:"description"`
	ReportURL          string `json:"report_url"`
}

type UpdateCampaignRequest struct {
	Name               *string `json:"name"`
	Country            *string `json:"country"`
	Vertical           *string `json:"vertical"`
	Platform           *string `json:"platform"`
	Segment            *string `json:"segment"`
	ExternalPlatformID *string `json:"external_platform_id"`
	OwnerName          *string `json:"owner_name"`
	ShortDescription   *string `json:"short_description"`
	Objective          *string `json:"objective"`
	Benefit            *string `json:"benefit"`
	Description        *string `json:"description"`
	ReportURL          *string `json:"report_url"`
	State              *string `json:"state"`

	Reach             *int64   `json:"reach"`
	Clicks            *int64   `json:"clicks"`
	Leads             *int64   `json:"leads"`
	WeeklySpend       *float64 `json:"weekly_spend"`
	DriversRegistered *int64   `json:"drivers_registered"`
	DriversFirstRide  *int64   `json:"drivers_first_ride"`
}

type CampaignDTO struct {
	CampaignID         string `json:"campaign_id"`
	Name               string `json:"name"`
	Country            string `json:"country"`
	Vertical           string `json:"vertical"`
	Platform           string `json:"platform"`
	Segment            string `json:"segment"`
	ExternalPlatformID string `json:"external_platform_id"`
	OwnerName          string `json:"owner_name"`
	OwnerInitials      string `json:"owner_initials"`
	ShortDescription   string `json:"short_description"`
	Objective          string `json:"objective"`
	Benefit            string `json:"benefit"`
	Description        string `json:"description"`
	ReportURL          string `json:"report_url"`
	State              string `json:"state"`

	Reach                   *int64   `json:"reach"`
	Clicks                  *int64   `json:"clicks"`
	Leads                   *int64   `json:"leads"`
	WeeklySpend             *float64 `json:"weekly_spend"`
	CostPerLead             *float64 `json:"cost_per_lead"`
	DriversRegistered       *int64   `json:"drivers_registered"`
	DriversFirstRide        *int64   `json:"drivers_first_ride"`
	CostPerDriverRegistered *float64 `json:"cost_per_driver_registered"`
	CostPerDriverFirstRide  *float64 `json:"cost_per_driver_first_ride"`

	ISOWeek   int    `json:"iso_week"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
	// MissingMetrics is set on archive responses that went through
	// with an incomplete snapshot.
	MissingMetrics bool `json:"missing_metrics,omitempty"`
}

type GetCampaignResponse struct {
	Campaign  CampaignDTO   `json:"campaign"`
	Creatives []CreativeDTO `json:"creatives"`
}

type ListCampaignsResponse struct {
	Items []CampaignDTO `json:"items"`
}

type CreateCreativeRequest struct {
	FileName      string `json:"file_name"`
	ExternalURL   string `json:"external_url"`
	InlinePayload string `json:"inline_payload"`
	Position      *int   `json:"position"`
	Active        *bool  `json:"active"`
}

type UpdateCreativeRequest struct {
	FileName      *string `json:"file_name"`
	ExternalURL   *string `json:"external_url"`
	InlinePayload *string `json:"inline_payload"`
	Position      *int    `json:"position"`
}

type CreativeDTO struct {
	CreativeID    string `json:"creative_id"`
	CampaignID    string `json:"campaign_id"`
	FileName      string `json:"file_name"`
	ExternalURL   string `json:"external_url"`
	InlinePayload string `json:"inline_payload,omitempty"`
	Active        bool   `json:"active"`
	Position      int    `json:"position"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type CreativeResponse struct {
	Creative CreativeDTO `json:"creative"`
	Campaign CampaignDTO `json:"campaign"`
}

type ReorderCreativesRequest struct {
	CreativeIDs []string `json:"creative_ids"`
}

type ListCreativesResponse struct {
	Items []CreativeDTO `json:"items"`
}

type TaskDTO struct {
	TaskID      string `json:"task_id"`
	CampaignID  string `json:"campaign_id"`
	Type        string `json:"type"`
	Role        string `json:"role"`
	Assignee    string `json:"assignee"`
	Description string `json:"description"`
	Urgent      bool   `json:"urgent"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

type TaskResponse struct {
	Task TaskDTO `json:"task"`
}

type ListTasksResponse struct {
	Items []TaskDTO `json:"items"`
}

type GenerateTasksResponse struct {
	Created int `json:"created"`
}

type DeriveTaskRequest struct {
	NewAssignee string `json:"new_assignee"`
}

type WeeklyRecordDTO struct {
	RecordID   string `json:"record_id"`
	CampaignID string `json:"campaign_id"`
	ISOWeek    int    `json:"iso_week"`
	SnapshotAt string `json:"snapshot_at"`
	RecordedBy string `json:"recorded_by"`

	Reach                   *int64   `json:"reach"`
	Clicks                  *int64   `json:"clicks"`
	Leads                   *int64   `json:"leads"`
	WeeklySpend             *float64 `json:"weekly_spend"`
	CostPerLead             *float64 `json:"cost_per_lead"`
	DriversRegistered       *int64   `json:"drivers_registered"`
	DriversFirstRide        *int64   `json:"drivers_first_ride"`
	CostPerDriverRegistered *float64 `json:"cost_per_driver_registered"`
	CostPerDriverFirstRide  *float64 `json:"cost_per_driver_first_ride"`
}

type WeeklyRecordResponse struct {
	Record WeeklyRecordDTO `json:"record"`
}

type SetHistoryWeekRequest struct {
	ISOWeek int `json:"iso_week"`
}

type ListHistoryResponse struct {
	Items []WeeklyRecordDTO `json:"items"`
}

type ImportHistoryResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}
