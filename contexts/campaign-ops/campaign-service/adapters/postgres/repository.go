package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	domainerrors "adtrack/contexts/campaign-ops/campaign-service/domain/errors"
	"adtrack/contexts/campaign-ops/campaign-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
	idGen  ports.IDGenerator
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
		idGen:  UUIDGenerator{},
	}
}

func (r *Repository) CreateCampaign(ctx context.Context, campaign entities.Campaign) error {
	row := campaignModelFromEntity(campaign)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidCampaignInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateCampaign(ctx context.Context, campaign entities.Campaign) error {
	row := campaignModelFromEntity(campaign)
	result := r.db.WithContext(ctx).
		Model(&campaignModel{}).
		Where("campaign_id = ?", row.CampaignID).
		Select("*").
		Omit("campaign_id", "created_at").
		Updates(row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCampaignNotFound
	}
	return nil
}

func (r *Repository) GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error) {
	var row campaignModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Campaign{}, domainerrors.ErrCampaignNotFound
		}
		return entities.Campaign{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetCampaignByExternalID(ctx context.Context, externalID string) (entities.Campaign, error) {
	key := strings.TrimSpace(externalID)
	if key == "" {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	var row campaignModel
	err := r.db.WithContext(ctx).
		Where("external_platform_id = ?", key).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Campaign{}, domainerrors.ErrCampaignNotFound
		}
		return entities.Campaign{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetCampaignByName(ctx context.Context, name string) (entities.Campaign, error) {
	var row campaignModel
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Campaign{}, domainerrors.ErrCampaignNotFound
		}
		return entities.Campaign{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListCampaigns(ctx context.Context, filter ports.CampaignFilter) ([]entities.Campaign, error) {
	tx := r.db.WithContext(ctx).Model(&campaignModel{})
	if filter.State != "" {
		tx = tx.Where("state = ?", string(filter.State))
	}
	if filter.Country != "" {
		tx = tx.Where("country = ?", string(filter.Country))
	}
	if filter.Vertical != "" {
		tx = tx.Where("vertical = ?", string(filter.Vertical))
	}
	if filter.Platform != "" {
		tx = tx.Where("platform = ?", string(filter.Platform))
	}
	if strings.TrimSpace(filter.Owner) != "" {
		tx = tx.Where("LOWER(owner_name) = LOWER(?)", strings.TrimSpace(filter.Owner))
	}
	if filter.ISOWeek != 0 {
		tx = tx.Where("iso_week = ?", filter.ISOWeek)
	}

	var rows []campaignModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Campaign, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CreateCreative(ctx context.Context, creative entities.Creative) error {
	row := creativeModelFromEntity(creative)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidCreativeInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateCreative(ctx context.Context, creative entities.Creative) error {
	row := creativeModelFromEntity(creative)
	result := r.db.WithContext(ctx).
		Model(&creativeModel{}).
		Where("creative_id = ?", row.CreativeID).
		Select("*").
		Omit("creative_id", "campaign_id", "created_at").
		Updates(row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCreativeNotFound
	}
	return nil
}

func (r *Repository) GetCreative(ctx context.Context, creativeID string) (entities.Creative, error) {
	var row creativeModel
	err := r.db.WithContext(ctx).
		Where("creative_id = ?", strings.TrimSpace(creativeID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Creative{}, domainerrors.ErrCreativeNotFound
		}
		return entities.Creative{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteCreative(ctx context.Context, creativeID string) error {
	result := r.db.WithContext(ctx).
		Where("creative_id = ?", strings.TrimSpace(creativeID)).
		Delete(&creativeModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCreativeNotFound
	}
	return nil
}

func (r *Repository) ListCreativesByCampaign(ctx context.Context, campaignID string) ([]entities.Creative, error) {
	var rows []creativeModel
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Order("position ASC, created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Creative, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CountActiveCreatives(ctx context.Context, campaignID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&creativeModel{}).
		Where("campaign_id = ? AND active = TRUE", strings.TrimSpace(campaignID)).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// CreateTaskIfAbsent inserts the task unless an incomplete row of the
// same (campaign, type) already exists. The parent campaign row is
// locked first so concurrent triggers for the same campaign serialize
// on it; locking only the candidate task rows would lock nothing when
// no row exists yet. A unique violation on insert (the schema carries
// a partial unique index on (campaign_id, task_type) WHERE NOT
// completed) resolves to the winning row.
func (r *Repository) CreateTaskIfAbsent(ctx context.Context, task entities.Task) (entities.Task, bool, error) {
	campaignID := strings.TrimSpace(task.CampaignID)
	surviving := task
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent campaignModel
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("campaign_id = ?", campaignID).
			First(&parent).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrCampaignNotFound
			}
			return err
		}

		var existing taskModel
		err = tx.
			Where("campaign_id = ? AND task_type = ? AND completed = FALSE",
				campaignID, string(task.Type)).
			First(&existing).
			Error
		if err == nil {
			surviving = existing.toEntity()
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row := taskModelFromEntity(task)
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				var winner taskModel
				findErr := tx.
					Where("campaign_id = ? AND task_type = ? AND completed = FALSE",
						campaignID, string(task.Type)).
					First(&winner).
					Error
				if findErr != nil {
					return findErr
				}
				surviving = winner.toEntity()
				return nil
			}
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return entities.Task{}, false, err
	}
	return surviving, created, nil
}

func (r *Repository) UpdateTask(ctx context.Context, task entities.Task) error {
	row := taskModelFromEntity(task)
	result := r.db.WithContext(ctx).
		Model(&taskModel{}).
		Where("task_id = ?", row.TaskID).
		Select("*").
		Omit("task_id", "campaign_id").
		Updates(row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTaskNotFound
	}
	return nil
}

func (r *Repository) GetTask(ctx context.Context, taskID string) (entities.Task, error) {
	var row taskModel
	err := r.db.WithContext(ctx).
		Where("task_id = ?", strings.TrimSpace(taskID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Task{}, domainerrors.ErrTaskNotFound
		}
		return entities.Task{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) FindIncompleteTask(ctx context.Context, campaignID string, taskType entities.TaskType) (entities.Task, bool, error) {
	var row taskModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ? AND task_type = ? AND completed = FALSE",
			strings.TrimSpace(campaignID), string(taskType)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Task{}, false, nil
		}
		return entities.Task{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListTasksByCampaign(ctx context.Context, campaignID string) ([]entities.Task, error) {
	var rows []taskModel
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return taskEntities(rows), nil
}

func (r *Repository) ListTasks(ctx context.Context, filter ports.TaskFilter) ([]entities.Task, error) {
	tx := r.db.WithContext(ctx).Model(&taskModel{})
	assignee := strings.TrimSpace(filter.Assignee)
	switch {
	case assignee != "" && filter.Role != "":
		tx = tx.Where("LOWER(assignee) = LOWER(?) OR role = ?", assignee, string(filter.Role))
	case assignee != "":
		tx = tx.Where("LOWER(assignee) = LOWER(?)", assignee)
	case filter.Role != "":
		tx = tx.Where("role = ?", string(filter.Role))
	}
	if filter.Completed != nil {
		tx = tx.Where("completed = ?", *filter.Completed)
	}

	var rows []taskModel
	if err := tx.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return taskEntities(rows), nil
}

func taskEntities(rows []taskModel) []entities.Task {
	items := make([]entities.Task, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

func (r *Repository) CreateWeeklyRecord(ctx context.Context, record entities.WeeklyRecord) error {
	row := weeklyRecordModelFromEntity(record)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidCampaignInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateWeeklyRecord(ctx context.Context, record entities.WeeklyRecord) error {
	row := weeklyRecordModelFromEntity(record)
	result := r.db.WithContext(ctx).
		Model(&weeklyRecordModel{}).
		Where("record_id = ?", row.RecordID).
		Select("*").
		Omit("record_id", "campaign_id", "created_at").
		Updates(row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrHistoryRecordNotFound
	}
	return nil
}

func (r *Repository) FindWeeklyRecord(ctx context.Context, campaignID string, isoWeek int) (entities.WeeklyRecord, bool, error) {
	var row weeklyRecordModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ? AND iso_week = ?", strings.TrimSpace(campaignID), isoWeek).
		Order("created_at ASC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.WeeklyRecord{}, false, nil
		}
		return entities.WeeklyRecord{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListWeeklyRecords(ctx context.Context, campaignID string) ([]entities.WeeklyRecord, error) {
	var rows []weeklyRecordModel
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Order("iso_week DESC, created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return weeklyRecordEntities(rows), nil
}

func (r *Repository) ListWeeklyRecordsByWeek(ctx context.Context, isoWeek int) ([]entities.WeeklyRecord, error) {
	var rows []weeklyRecordModel
	if err := r.db.WithContext(ctx).
		Where("iso_week = ?", isoWeek).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return weeklyRecordEntities(rows), nil
}

func weeklyRecordEntities(rows []weeklyRecordModel) []entities.WeeklyRecord {
	items := make([]entities.WeeklyRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

func (r *Repository) GetWeeklyRecord(ctx context.Context, recordID string) (entities.WeeklyRecord, error) {
	var row weeklyRecordModel
	err := r.db.WithContext(ctx).
		Where("record_id = ?", strings.TrimSpace(recordID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.WeeklyRecord{}, domainerrors.ErrHistoryRecordNotFound
		}
		return entities.WeeklyRecord{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteWeeklyRecord(ctx context.Context, recordID string) error {
	result := r.db.WithContext(ctx).
		Where("record_id = ?", strings.TrimSpace(recordID)).
		Delete(&weeklyRecordModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrHistoryRecordNotFound
	}
	return nil
}

func (r *Repository) Record(ctx context.Context, entry ports.AuditEntry) error {
	auditID, err := r.idGen.NewID(ctx)
	if err != nil {
		return err
	}
	row := auditEntryModelFromEntry(auditID, entry)
	return r.db.WithContext(ctx).Create(&row).Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
