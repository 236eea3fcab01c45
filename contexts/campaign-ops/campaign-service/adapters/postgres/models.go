package postgresadapter

import (
	"strings"
	"time"

	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
)

type campaignModel struct {
	CampaignID              string    `gorm:"column:campaign_id;primaryKey"`
	Name                    string    `gorm:"column:name"`
	Country                 string    `gorm:"column:country"`
	Vertical                string    `gorm:"column:vertical"`
	Platform                string    `gorm:"column:platform"`
	Segment                 string    `gorm:"column:segment"`
	ExternalPlatformID      string    `gorm:"column:external_platform_id"`
	OwnerName               string    `gorm:"column:owner_name"`
	OwnerInitials           string    `gorm:"column:owner_initials"`
	ShortDescription        string    `gorm:"column:short_description"`
	Objective               string    `gorm:"column:objective"`
	Benefit                 string    `gorm:"column:benefit"`
	Description             string    `gorm:"column:description"`
	ReportURL               string    `gorm:"column:report_url"`
	State                   string    `gorm:"column:state"`
	Reach                   *int64    `gorm:"column:reach"`
	Clicks                  *int64    `gorm:"column:clicks"`
	Leads                   *int64    `gorm:"column:leads"`
	WeeklySpend             *float64  `gorm:"column:weekly_spend"`
	CostPerLead             *float64  `gorm:"column:cost_per_lead"`
	DriversRegistered       *int64    `gorm:"column:drivers_registered"`
	DriversFirstRide        *int64    `gorm:"column:drivers_first_ride"`
	CostPerDriverRegistered *float64  `gorm:"column:cost_per_driver_registered"`
	CostPerDriverFirstRide  *float64  `gorm:"column:cost_per_driver_first_ride"`
	ISOWeek                 int       `gorm:"column:iso_week"`
	CreatedAt               time.Time `gorm:"column:created_at"`
	UpdatedAt               time.Time `gorm:"column:updated_at"`
}

func (campaignModel) TableName() string {
	return "campaigns"
}

func campaignModelFromEntity(item entities.Campaign) campaignModel {
	return campaignModel{
		CampaignID:              strings.TrimSpace(item.CampaignID),
		Name:                    strings.TrimSpace(item.Name),
		Country:                 string(item.Country),
		Vertical:                string(item.Vertical),
		Platform:                string(item.Platform),
		Segment:                 string(item.Segment),
		ExternalPlatformID:      strings.TrimSpace(item.ExternalPlatformID),
		OwnerName:               strings.TrimSpace(item.OwnerName),
		OwnerInitials:           strings.TrimSpace(item.OwnerInitials),
		ShortDescription:        item.ShortDescription,
		Objective:               item.Objective,
		Benefit:                 item.Benefit,
		Description:             item.Description,
		ReportURL:               strings.TrimSpace(item.ReportURL),
		State:                   string(item.State),
		Reach:                   item.Reach,
		Clicks:                  item.Clicks,
		Leads:                   item.Leads,
		WeeklySpend:             item.WeeklySpend,
		CostPerLead:             item.CostPerLead,
		DriversRegistered:       item.DriversRegistered,
		DriversFirstRide:        item.DriversFirstRide,
		CostPerDriverRegistered: item.CostPerDriverRegistered,
		CostPerDriverFirstRide:  item.CostPerDriverFirstRide,
		ISOWeek:                 item.ISOWeek,
		CreatedAt:               item.CreatedAt.UTC(),
		UpdatedAt:               item.UpdatedAt.UTC(),
	}
}

func (m campaignModel) toEntity() entities.Campaign {
	return entities.Campaign{
		CampaignID:              m.CampaignID,
		Name:                    m.Name,
		Country:                 entities.Country(m.Country),
		Vertical:                entities.Vertical(m.Vertical),
		Platform:                entities.AdPlatform(m.Platform),
		Segment:                 entities.Segment(m.Segment),
		ExternalPlatformID:      m.ExternalPlatformID,
		OwnerName:               m.OwnerName,
		OwnerInitials:           m.OwnerInitials,
		ShortDescription:        m.ShortDescription,
		Objective:               m.Objective,
		Benefit:                 m.Benefit,
		Description:             m.Description,
		ReportURL:               m.ReportURL,
		State:                   entities.CampaignState(m.State),
		Reach:                   m.Reach,
		Clicks:                  m.Clicks,
		Leads:                   m.Leads,
		WeeklySpend:             m.WeeklySpend,
		CostPerLead:             m.CostPerLead,
		DriversRegistered:       m.DriversRegistered,
		DriversFirstRide:        m.DriversFirstRide,
		CostPerDriverRegistered: m.CostPerDriverRegistered,
		CostPerDriverFirstRide:  m.CostPerDriverFirstRide,
		ISOWeek:                 m.ISOWeek,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}

type creativeModel struct {
	CreativeID    string    `gorm:"column:creative_id;primaryKey"`
	CampaignID    string    `gorm:"column:campaign_id"`
	FileName      string    `gorm:"column:file_name"`
	ExternalURL   string    `gorm:"column:external_url"`
	InlinePayload string    `gorm:"column:inline_payload"`
	Active        bool      `gorm:"column:active"`
	Position      int       `gorm:"column:position"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (creativeModel) TableName() string {
	return "creatives"
}

func creativeModelFromEntity(item entities.Creative) creativeModel {
	return creativeModel{
		CreativeID:    strings.TrimSpace(item.CreativeID),
		CampaignID:    strings.TrimSpace(item.CampaignID),
		FileName:      strings.TrimSpace(item.FileName),
		ExternalURL:   strings.TrimSpace(item.ExternalURL),
		InlinePayload: item.InlinePayload,
		Active:        item.Active,
		Position:      item.Position,
		CreatedAt:     item.CreatedAt.UTC(),
		UpdatedAt:     item.UpdatedAt.UTC(),
	}
}

func (m creativeModel) toEntity() entities.Creative {
	return entities.Creative{
		CreativeID:    m.CreativeID,
		CampaignID:    m.CampaignID,
		FileName:      m.FileName,
		ExternalURL:   m.ExternalURL,
		InlinePayload: m.InlinePayload,
		Active:        m.Active,
		Position:      m.Position,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type taskModel struct {
	TaskID      string     `gorm:"column:task_id;primaryKey"`
	CampaignID  string     `gorm:"column:campaign_id"`
	TaskType    string     `gorm:"column:task_type"`
	Role        string     `gorm:"column:role"`
	Assignee    string     `gorm:"column:assignee"`
	Description string     `gorm:"column:description"`
	Urgent      bool       `gorm:"column:urgent"`
	Completed   bool       `gorm:"column:completed"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	CompletedAt *time.Time `gorm:"column:completed_at"`
}

func (taskModel) TableName() string {
	return "pending_tasks"
}

func taskModelFromEntity(item entities.Task) taskModel {
	return taskModel{
		TaskID:      strings.TrimSpace(item.TaskID),
		CampaignID:  strings.TrimSpace(item.CampaignID),
		TaskType:    string(item.Type),
		Role:        string(item.Role),
		Assignee:    strings.TrimSpace(item.Assignee),
		Description: item.Description,
		Urgent:      item.Urgent,
		Completed:   item.Completed,
		CreatedAt:   item.CreatedAt.UTC(),
		CompletedAt: item.CompletedAt,
	}
}

func (m taskModel) toEntity() entities.Task {
	return entities.Task{
		TaskID:      m.TaskID,
		CampaignID:  m.CampaignID,
		Type:        entities.TaskType(m.TaskType),
		Role:        entities.TaskRole(m.Role),
		Assignee:    m.Assignee,
		Description: m.Description,
		Urgent:      m.Urgent,
		Completed:   m.Completed,
		CreatedAt:   m.CreatedAt,
		CompletedAt: m.CompletedAt,
	}
}

type weeklyRecordModel struct {
	RecordID                string    `gorm:"column:record_id;primaryKey"`
	CampaignID              string    `gorm:"column:campaign_id"`
	ISOWeek                 int       `gorm:"column:iso_week"`
	SnapshotAt              time.Time `gorm:"column:snapshot_at"`
	RecordedBy              string    `gorm:"column:recorded_by"`
	Reach                   *int64    `gorm:"column:reach"`
	Clicks                  *int64    `gorm:"column:clicks"`
	Leads                   *int64    `gorm:"column:leads"`
	WeeklySpend             *float64  `gorm:"column:weekly_spend"`
	CostPerLead             *float64  `gorm:"column:cost_per_lead"`
	DriversRegistered       *int64    `gorm:"column:drivers_registered"`
	DriversFirstRide        *int64    `gorm:"column:drivers_first_ride"`
	CostPerDriverRegistered *float64  `gorm:"column:cost_per_driver_registered"`
	CostPerDriverFirstRide  *float64  `gorm:"column:cost_per_driver_first_ride"`
	CreatedAt               time.Time `gorm:"column:created_at"`
}

func (weeklyRecordModel) TableName() string {
	return "weekly_history"
}

func weeklyRecordModelFromEntity(item entities.WeeklyRecord) weeklyRecordModel {
	return weeklyRecordModel{
		RecordID:                strings.TrimSpace(item.RecordID),
		CampaignID:              strings.TrimSpace(item.CampaignID),
		ISOWeek:                 item.ISOWeek,
		SnapshotAt:              item.SnapshotAt.UTC(),
		RecordedBy:              strings.TrimSpace(item.RecordedBy),
		Reach:                   item.Reach,
		Clicks:                  item.Clicks,
		Leads:                   item.Leads,
		WeeklySpend:             item.WeeklySpend,
		CostPerLead:             item.CostPerLead,
		DriversRegistered:       item.DriversRegistered,
		DriversFirstRide:        item.DriversFirstRide,
		CostPerDriverRegistered: item.CostPerDriverRegistered,
		CostPerDriverFirstRide:  item.CostPerDriverFirstRide,
		CreatedAt:               item.CreatedAt.UTC(),
	}
}

func (m weeklyRecordModel) toEntity() entities.WeeklyRecord {
	return entities.WeeklyRecord{
		RecordID:                m.RecordID,
		CampaignID:              m.CampaignID,
		ISOWeek:                 m.ISOWeek,
		SnapshotAt:              m.SnapshotAt,
		RecordedBy:              m.RecordedBy,
		Reach:                   m.Reach,
		Clicks:                  m.Clicks,
		Leads:                   m.Leads,
		WeeklySpend:             m.WeeklySpend,
		CostPerLead:             m.CostPerLead,
		DriversRegistered:       m.DriversRegistered,
		DriversFirstRide:        m.DriversFirstRide,
		CostPerDriverRegistered: m.CostPerDriverRegistered,
		CostPerDriverFirstRide:  m.CostPerDriverFirstRide,
		CreatedAt:               m.CreatedAt,
	}
}

type auditEntryModel struct {
	AuditID    string    `gorm:"column:audit_id;primaryKey"`
	EntityType string    `gorm:"column:entity_type"`
	Action     string    `gorm:"column:action"`
	EntityID   string    `gorm:"column:entity_id"`
	ActorName  string    `gorm:"column:actor_name"`
	Summary    string    `gorm:"column:summary"`
	Details    string    `gorm:"column:details"`
	OccurredAt time.Time `gorm:"column:occurred_at"`
}

func (auditEntryModel) TableName() string {
	return "audit_trail"
}

func auditEntryModelFromEntry(auditID string, entry ports.AuditEntry) auditEntryModel {
	return auditEntryModel{
		AuditID:    auditID,
		EntityType: entry.EntityType,
		Action:     entry.Action,
		EntityID:   entry.EntityID,
		ActorName:  entry.ActorName,
		Summary:    entry.Summary,
		Details:    entry.Details,
		OccurredAt: entry.OccurredAt.UTC(),
	}
}
