package entities

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type TaskType string
type TaskRole string

const (
	TaskCreateCampaign       TaskType = "create_campaign"
	TaskSendCreative         TaskType = "send_creative"
	TaskActivateCampaign     TaskType = "activate_campaign"
	TaskUploadTrafficMetrics TaskType = "upload_traffic_metrics"
	TaskUploadDriverMetrics  TaskType = "upload_driver_metrics"
	TaskArchiveCampaign      TaskType = "archive_campaign"
)

const (
	RoleMarketing  TaskRole = "marketing"
	RoleTrafficker TaskRole = "trafficker"
	RoleOwner      TaskRole = "owner"
	RoleAdmin      TaskRole = "admin"
)

// Task is a unit of pending human work derived from campaign state.
// At most one incomplete task of a given type exists per campaign.
type Task struct {
	TaskID      string
	CampaignID  string
	Type        TaskType
	Role        TaskRole
	Assignee    string
	Description string
	Urgent      bool
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// AssigneeStrategy names who resolves a task's assignee: a fixed
// team contact or the campaign's owner.
type AssigneeStrategy string

const (
	AssignMarketingContact  AssigneeStrategy = "marketing_contact"
	AssignTraffickerContact AssigneeStrategy = "trafficker_contact"
	AssignCampaignOwner     AssigneeStrategy = "campaign_owner"
)

// TaskSpec describes how a task of a given type is filled in. The
// description template takes the campaign name as its only argument.
type TaskSpec struct {
	Role        TaskRole
	Assignee    AssigneeStrategy
	Description string
}

var taskSpecs = map[TaskType]TaskSpec{
	TaskCreateCampaign: {
		Role:        RoleMarketing,
		Assignee:    AssignMarketingContact,
		Description: "Create the campaign: %s",
	},
	TaskSendCreative: {
		Role:        RoleMarketing,
		Assignee:    AssignMarketingContact,
		Description: "Send the creative for: %s",
	},
	TaskActivateCampaign: {
		Role:        RoleMarketing,
		Assignee:    AssignMarketingContact,
		Description: "Activate the campaign: %s",
	},
	TaskUploadTrafficMetrics: {
		Role:        RoleTrafficker,
		Assignee:    AssignTraffickerContact,
		Description: "Upload trafficker metrics for: %s (reach, clicks, leads, spend)",
	},
	TaskUploadDriverMetrics: {
		Role:        RoleOwner,
		Assignee:    AssignCampaignOwner,
		Description: "Upload driver metrics for: %s (registered, first ride)",
	},
	TaskArchiveCampaign: {
		Role:        RoleOwner,
		Assignee:    AssignCampaignOwner,
		Description: "Archive the campaign: %s (all metrics recorded)",
	},
}

// SpecForTaskType looks up the fill-in rules for a task type.
func SpecForTaskType(taskType TaskType) (TaskSpec, bool) {
	spec, ok := taskSpecs[taskType]
	return spec, ok
}

// DescribeTask renders the standard description for a task type and
// campaign name.
func DescribeTask(taskType TaskType, campaignName string) string {
	spec, ok := taskSpecs[taskType]
	if !ok {
		return campaignName
	}
	return fmt.Sprintf(spec.Description, campaignName)
}

var derivedMarker = regexp.MustCompile(`\s*\[Derived by [^\]]*\]`)

// AnnotateDerivation stamps a reassignment marker on a description,
// replacing any marker from an earlier derivation so only the most
// recent one survives.
func AnnotateDerivation(description, actingUser, previousAssignee string) string {
	base := strings.TrimSpace(derivedMarker.ReplaceAllString(description, ""))
	return fmt.Sprintf("%s [Derived by %s from %s]", base, actingUser, previousAssignee)
}

func ParseTaskType(value string) (TaskType, bool) {
	candidate := TaskType(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := taskSpecs[candidate]; ok {
		return candidate, true
	}
	return "", false
}

func ParseTaskRole(value string) (TaskRole, bool) {
	switch TaskRole(strings.ToLower(strings.TrimSpace(value))) {
	case RoleMarketing:
		return RoleMarketing, true
	case RoleTrafficker:
		return RoleTrafficker, true
	case RoleOwner:
		return RoleOwner, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}
