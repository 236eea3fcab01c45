package campaignservice

import (
	"log/slog"

	httpadapter "adtrack/contexts/campaign-ops/campaign-service/adapters/http"
	"adtrack/contexts/campaign-ops/campaign-service/adapters/memory"
	"adtrack/contexts/campaign-ops/campaign-service/application/commands"
	"adtrack/contexts/campaign-ops/campaign-service/application/queries"
	"adtrack/contexts/campaign-ops/campaign-service/application/workers"
	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
	"adtrack/contexts/campaign-ops/campaign-service/ports"
)

const (
	DefaultMarketingContact  = "Marketing Team"
	DefaultTraffickerContact = "Traffic Desk"
)

type Module struct {
	Handler httpadapter.Handler
	Sweeper workers.WeeklySweeper
	Store   *memory.Store
}

type Dependencies struct {
	Campaigns         ports.CampaignRepository
	Creatives         ports.CreativeRepository
	Tasks             ports.TaskRepository
	History           ports.HistoryRepository
	Audit             ports.AuditSink
	Clock             ports.Clock
	IDGenerator       ports.IDGenerator
	MarketingContact  string
	TraffickerContact string
	Logger            *slog.Logger
}

func NewModule(deps Dependencies) Module {
	if deps.MarketingContact == "" {
		deps.MarketingContact = DefaultMarketingContact
	}
	if deps.TraffickerContact == "" {
		deps.TraffickerContact = DefaultTraffickerContact
	}

	reconciler := commands.TaskReconciler{
		Campaigns:         deps.Campaigns,
		Tasks:             deps.Tasks,
		Clock:             deps.Clock,
		IDGenerator:       deps.IDGenerator,
		MarketingContact:  deps.MarketingContact,
		TraffickerContact: deps.TraffickerContact,
		Logger:            deps.Logger,
	}

	createCampaign := commands.CreateCampaignUseCase{
		Campaigns: deps.Campaigns,
		Tasks:     reconciler,
		Audit:     deps.Audit,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}
	updateCampaign := commands.UpdateCampaignUseCase{
		Campaigns: deps.Campaigns,
		History:   deps.History,
		Tasks:     reconciler,
		Audit:     deps.Audit,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}
	archiveCampaign := commands.ArchiveCampaignUseCase{
		Campaigns: deps.Campaigns,
		History:   deps.History,
		Audit:     deps.Audit,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}
	reactivateCampaign := commands.ReactivateCampaignUseCase{
		Campaigns: deps.Campaigns,
		Tasks:     reconciler,
		Audit:     deps.Audit,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	creatives := commands.CreativeUseCase{
		Campaigns: deps.Campaigns,
		Creatives: deps.Creatives,
		Tasks:     reconciler,
		Audit:     deps.Audit,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}
	generateTasks := commands.GenerateTasksUseCase{
		Tasks:  reconciler,
		Logger: deps.Logger,
	}
	completeTask := commands.CompleteTaskUseCase{
		Tasks:  deps.Tasks,
		Audit:  deps.Audit,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	deriveTask := commands.DeriveTaskUseCase{
		Tasks:  deps.Tasks,
		Audit:  deps.Audit,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	importHistory := commands.ImportHistoryUseCase{
		Campaigns: deps.Campaigns,
		History:   deps.History,
		Audit:     deps.Audit,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}
	deleteHistory := commands.DeleteHistoryRecordUseCase{
		History: deps.History,
		Audit:   deps.Audit,
		Clock:   deps.Clock,
		Logger:  deps.Logger,
	}
	setHistoryWeek := commands.SetHistoryWeekUseCase{
		History: deps.History,
		Audit:   deps.Audit,
		Clock:   deps.Clock,
		Logger:  deps.Logger,
	}

	listCampaigns := queries.ListCampaignsUseCase{
		Campaigns: deps.Campaigns,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	getCampaign := queries.GetCampaignUseCase{
		Campaigns: deps.Campaigns,
		Creatives: deps.Creatives,
		Logger:    deps.Logger,
	}
	listTasks := queries.ListTasksUseCase{
		Tasks:  deps.Tasks,
		Logger: deps.Logger,
	}
	listHistory := queries.ListHistoryUseCase{
		History: deps.History,
		Logger:  deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateCampaign:     createCampaign,
			UpdateCampaign:     updateCampaign,
			ArchiveCampaign:    archiveCampaign,
			ReactivateCampaign: reactivateCampaign,
			Creatives:          creatives,
			GenerateTasks:      generateTasks,
			CompleteTask:       completeTask,
			DeriveTask:         deriveTask,
			ImportHistory:      importHistory,
			DeleteHistory:      deleteHistory,
			SetHistoryWeek:     setHistoryWeek,
			ListCampaigns:      listCampaigns,
			GetCampaign:        getCampaign,
			ListTasks:          listTasks,
			ListHistory:        listHistory,
			Logger:             deps.Logger,
		},
		Sweeper: workers.WeeklySweeper{
			Campaigns: deps.Campaigns,
			Tasks:     reconciler,
			Clock:     deps.Clock,
			Logger:    deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Campaign, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Campaigns:   store,
		Creatives:   store,
		Tasks:       store,
		History:     store,
		Audit:       store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
