package ports

import (
	"context"
	"time"

	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
)

type CampaignFilter struct {
	State    entities.CampaignState
	Country  entities.Country
	Vertical entities.Vertical
	Platform entities.AdPlatform
	Owner    string
	ISOWeek  int
}

type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign entities.Campaign) error
	UpdateCampaign(ctx context.Context, campaign entities.Campaign) error
	GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error)
	GetCampaignByExternalID(ctx context.Context, externalID string) (entities.Campaign, error)
	GetCampaignByName(ctx context.Context, name string) (entities.Campaign, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]entities.Campaign, error)
}

type CreativeRepository interface {
	CreateCreative(ctx context.Context, creative entities.Creative) error
	UpdateCreative(ctx context.Context, creative entities.Creative) error
	GetCreative(ctx context.Context, creativeID string) (entities.Creative, error)
	DeleteCreative(ctx context.Context, creativeID string) error
	ListCreativesByCampaign(ctx context.Context, campaignID string) ([]entities.Creative, error)
	CountActiveCreatives(ctx context.Context, campaignID string) (int, error)
}

// TaskFilter narrows ListTasks. When both Assignee and Role are set a
// task matches if either one hits, so an owner sees tasks assigned to
// them by name alongside the unassigned tasks routed to their role.
type TaskFilter struct {
	Assignee  string
	Role      entities.TaskRole
	Completed *bool
}

type TaskRepository interface {
	// CreateTaskIfAbsent inserts the task unless an incomplete task of
	// the same type already exists for the campaign. It returns the
	// surviving task and whether a new row was created. This is the
	// single logical idempotency check for task generation.
	CreateTaskIfAbsent(ctx context.Context, task entities.Task) (entities.Task, bool, error)
	UpdateTask(ctx context.Context, task entities.Task) error
	GetTask(ctx context.Context, taskID string) (entities.Task, error)
	FindIncompleteTask(ctx context.Context, campaignID string, taskType entities.TaskType) (entities.Task, bool, error)
	ListTasksByCampaign(ctx context.Context, campaignID string) ([]entities.Task, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]entities.Task, error)
}

type HistoryRepository interface {
	CreateWeeklyRecord(ctx context.Context, record entities.WeeklyRecord) error
	UpdateWeeklyRecord(ctx context.Context, record entities.WeeklyRecord) error
	GetWeeklyRecord(ctx context.Context, recordID string) (entities.WeeklyRecord, error)
	FindWeeklyRecord(ctx context.Context, campaignID string, isoWeek int) (entities.WeeklyRecord, bool, error)
	ListWeeklyRecords(ctx context.Context, campaignID string) ([]entities.WeeklyRecord, error)
	ListWeeklyRecordsByWeek(ctx context.Context, isoWeek int) ([]entities.WeeklyRecord, error)
	DeleteWeeklyRecord(ctx context.Context, recordID string) error
}

// AuditSink records who did what. Writes are best effort: callers log
// and continue when a write fails, the primary mutation never rolls
// back on an audit failure.
type AuditSink interface {
	Record(ctx context.Context, entry AuditEntry) error
}

type AuditEntry struct {
	EntityType string
	Action     string
	EntityID   string
	ActorName  string
	Summary    string
	Details    string
	OccurredAt time.Time
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
