package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	domainerrors "adtrack/contexts/campaign-ops/campaign-service/domain/errors"
	"adtrack/contexts/campaign-ops/campaign-service/ports"

	"github.com/google/uuid"
)

// Store is the in-memory implementation of every repository port plus
// the clock and id generator, used by tests and local runs.
type Store struct {
	mu sync.RWMutex

	campaigns map[string]entities.Campaign
	creatives map[string]entities.Creative
	tasks     map[string]entities.Task
	history   map[string]entities.WeeklyRecord
	auditLog  []ports.AuditEntry

	now time.Time
}

func NewStore(seed []entities.Campaign) *Store {
	campaigns := make(map[string]entities.Campaign, len(seed))
	for _, item := range seed {
		campaigns[item.CampaignID] = item
	}
	return &Store{
		campaigns: campaigns,
		creatives: make(map[string]entities.Creative),
		tasks:     make(map[string]entities.Task),
		history:   make(map[string]entities.WeeklyRecord),
		auditLog:  make([]ports.AuditEntry, 0),
	}
}

func (s *Store) CreateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[campaign.CampaignID]; exists {
		return domainerrors.ErrInvalidCampaignInput
	}
	s.campaigns[campaign.CampaignID] = campaign
	return nil
}

func (s *Store) UpdateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[campaign.CampaignID]; !exists {
		return domainerrors.ErrCampaignNotFound
	}
	s.campaigns[campaign.CampaignID] = campaign
	return nil
}

func (s *Store) GetCampaign(_ context.Context, campaignID string) (entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.campaigns[strings.TrimSpace(campaignID)]
	if !exists {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return item, nil
}

func (s *Store) GetCampaignByExternalID(_ context.Context, externalID string) (entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := strings.TrimSpace(externalID)
	if key == "" {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	for _, campaign := range s.campaigns {
		if campaign.ExternalPlatformID == key {
			return campaign, nil
		}
	}
	return entities.Campaign{}, domainerrors.ErrCampaignNotFound
}

func (s *Store) GetCampaignByName(_ context.Context, name string) (entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := strings.TrimSpace(name)
	for _, campaign := range s.campaigns {
		if strings.EqualFold(campaign.Name, key) {
			return campaign, nil
		}
	}
	return entities.Campaign{}, domainerrors.ErrCampaignNotFound
}

func (s *Store) ListCampaigns(_ context.Context, filter ports.CampaignFilter) ([]entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Campaign, 0, len(s.campaigns))
	for _, campaign := range s.campaigns {
		if filter.State != "" && campaign.State != filter.State {
			continue
		}
		if filter.Country != "" && campaign.Country != filter.Country {
			continue
		}
		if filter.Vertical != "" && campaign.Vertical != filter.Vertical {
			continue
		}
		if filter.Platform != "" && campaign.Platform != filter.Platform {
			continue
		}
		if filter.Owner != "" && !strings.EqualFold(campaign.OwnerName, filter.Owner) {
			continue
		}
		if filter.ISOWeek != 0 && campaign.ISOWeek != filter.ISOWeek {
			continue
		}
		items = append(items, campaign)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CampaignID < items[j].CampaignID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) CreateCreative(_ context.Context, creative entities.Creative) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.creatives[creative.CreativeID]; exists {
		return domainerrors.ErrInvalidCreativeInput
	}
	if _, exists := s.campaigns[creative.CampaignID]; !exists {
		return domainerrors.ErrCampaignNotFound
	}
	s.creatives[creative.CreativeID] = creative
	return nil
}

func (s *Store) UpdateCreative(_ context.Context, creative entities.Creative) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.creatives[creative.CreativeID]; !exists {
		return domainerrors.ErrCreativeNotFound
	}
	s.creatives[creative.CreativeID] = creative
	return nil
}

func (s *Store) GetCreative(_ context.Context, creativeID string) (entities.Creative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.creatives[strings.TrimSpace(creativeID)]
	if !exists {
		return entities.Creative{}, domainerrors.ErrCreativeNotFound
	}
	return item, nil
}

func (s *Store) DeleteCreative(_ context.Context, creativeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.creatives[creativeID]; !exists {
		return domainerrors.ErrCreativeNotFound
	}
	delete(s.creatives, creativeID)
	return nil
}

func (s *Store) ListCreativesByCampaign(_ context.Context, campaignID string) ([]entities.Creative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Creative, 0)
	for _, item := range s.creatives {
		if item.CampaignID == strings.TrimSpace(campaignID) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Position == items[j].Position {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].Position < items[j].Position
	})
	return items, nil
}

func (s *Store) CountActiveCreatives(_ context.Context, campaignID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.creatives {
		if item.CampaignID == campaignID && item.Active {
			count++
		}
	}
	return count, nil
}

func (s *Store) CreateTaskIfAbsent(_ context.Context, task entities.Task) (entities.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.tasks {
		if existing.CampaignID == task.CampaignID && existing.Type == task.Type && !existing.Completed {
			return existing, false, nil
		}
	}
	s.tasks[task.TaskID] = task
	return task, true, nil
}

func (s *Store) UpdateTask(_ context.Context, task entities.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.TaskID]; !exists {
		return domainerrors.ErrTaskNotFound
	}
	s.tasks[task.TaskID] = task
	return nil
}

func (s *Store) GetTask(_ context.Context, taskID string) (entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.tasks[strings.TrimSpace(taskID)]
	if !exists {
		return entities.Task{}, domainerrors.ErrTaskNotFound
	}
	return item, nil
}

func (s *Store) FindIncompleteTask(_ context.Context, campaignID string, taskType entities.TaskType) (entities.Task, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.tasks {
		if item.CampaignID == campaignID && item.Type == taskType && !item.Completed {
			return item, true, nil
		}
	}
	return entities.Task{}, false, nil
}

func (s *Store) ListTasksByCampaign(_ context.Context, campaignID string) ([]entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Task, 0)
	for _, item := range s.tasks {
		if item.CampaignID == strings.TrimSpace(campaignID) {
			items = append(items, item)
		}
	}
	sortTasks(items)
	return items, nil
}

func (s *Store) ListTasks(_ context.Context, filter ports.TaskFilter) ([]entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Task, 0)
	for _, item := range s.tasks {
		if filter.Completed != nil && item.Completed != *filter.Completed {
			continue
		}
		// Assignee and role combine as a union so tasks routed to a
		// role surface next to tasks assigned by name.
		if filter.Assignee != "" || filter.Role != "" {
			byAssignee := filter.Assignee != "" && strings.EqualFold(item.Assignee, filter.Assignee)
			byRole := filter.Role != "" && item.Role == filter.Role
			if !byAssignee && !byRole {
				continue
			}
		}
		items = append(items, item)
	}
	sortTasks(items)
	return items, nil
}

func sortTasks(items []entities.Task) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].TaskID < items[j].TaskID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

func (s *Store) CreateWeeklyRecord(_ context.Context, record entities.WeeklyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.history[record.RecordID]; exists {
		return domainerrors.ErrInvalidCampaignInput
	}
	s.history[record.RecordID] = record
	return nil
}

func (s *Store) UpdateWeeklyRecord(_ context.Context, record entities.WeeklyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.history[record.RecordID]; !exists {
		return domainerrors.ErrHistoryRecordNotFound
	}
	s.history[record.RecordID] = record
	return nil
}

func (s *Store) FindWeeklyRecord(_ context.Context, campaignID string, isoWeek int) (entities.WeeklyRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.history {
		if item.CampaignID == campaignID && item.ISOWeek == isoWeek {
			return item, true, nil
		}
	}
	return entities.WeeklyRecord{}, false, nil
}

func (s *Store) ListWeeklyRecords(_ context.Context, campaignID string) ([]entities.WeeklyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.WeeklyRecord, 0)
	for _, item := range s.history {
		if item.CampaignID == strings.TrimSpace(campaignID) {
			items = append(items, item)
		}
	}
	sortWeeklyRecords(items)
	return items, nil
}

func (s *Store) ListWeeklyRecordsByWeek(_ context.Context, isoWeek int) ([]entities.WeeklyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.WeeklyRecord, 0)
	for _, item := range s.history {
		if item.ISOWeek == isoWeek {
			items = append(items, item)
		}
	}
	sortWeeklyRecords(items)
	return items, nil
}

// sortWeeklyRecords orders most recent week first.
func sortWeeklyRecords(items []entities.WeeklyRecord) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].ISOWeek == items[j].ISOWeek {
			return items[i].RecordID < items[j].RecordID
		}
		return items[i].ISOWeek > items[j].ISOWeek
	})
}

func (s *Store) GetWeeklyRecord(_ context.Context, recordID string) (entities.WeeklyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.history[strings.TrimSpace(recordID)]
	if !exists {
		return entities.WeeklyRecord{}, domainerrors.ErrHistoryRecordNotFound
	}
	return item, nil
}

func (s *Store) DeleteWeeklyRecord(_ context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.history[recordID]; !exists {
		return domainerrors.ErrHistoryRecordNotFound
	}
	delete(s.history, recordID)
	return nil
}

func (s *Store) Record(_ context.Context, entry ports.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.auditLog = append(s.auditLog, entry)
	return nil
}

// AuditTrail returns a copy of the recorded audit entries, oldest first.
func (s *Store) AuditTrail() []ports.AuditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]ports.AuditEntry(nil), s.auditLog...)
}

// SetNow pins the store clock. Zero time falls back to wall clock.
func (s *Store) SetNow(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.now = now
}

func (s *Store) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.now.IsZero() {
		return time.Now().UTC()
	}
	return s.now
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
