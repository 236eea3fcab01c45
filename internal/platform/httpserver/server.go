package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	campaignservice "adtrack/contexts/campaign-ops/campaign-service"
	campaignerrors "adtrack/contexts/campaign-ops/campaign-service/domain/errors"
	campaignhttp "adtrack/contexts/campaign-ops/campaign-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "adtrack/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	campaigns campaignservice.Module
}

func New(campaigns campaignservice.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		campaigns: campaigns,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/campaigns", s.handleCreateCampaign)
	s.mux.HandleFunc("GET /api/campaigns", s.handleListCampaigns)
	s.mux.HandleFunc("GET /api/campaigns/{campaign_id}", s.handleGetCampaign)
	s.mux.HandleFunc("PUT /api/campaigns/{campaign_id}", s.handleUpdateCampaign)
	s.mux.HandleFunc("POST /api/campaigns/{campaign_id}/archive", s.handleArchiveCampaign)
	s.mux.HandleFunc("POST /api/campaigns/{campaign_id}/reactivate", s.handleReactivateCampaign)

	s.mux.HandleFunc("POST /api/campaigns/{campaign_id}/creatives", s.handleCreateCreative)
	s.mux.HandleFunc("PUT /api/campaigns/{campaign_id}/creatives/reorder", s.handleReorderCreatives)
	s.mux.HandleFunc("PUT /api/creatives/{creative_id}", s.handleUpdateCreative)
	s.mux.HandleFunc("POST /api/creatives/{creative_id}/activate", s.handleActivateCreative)
	s.mux.HandleFunc("POST /api/creatives/{creative_id}/discard", s.handleDiscardCreative)
	s.mux.HandleFunc("POST /api/creatives/{creative_id}/resync", s.handleResyncCreative)
	s.mux.HandleFunc("DELETE /api/creatives/{creative_id}", s.handleDeleteCreative)

	s.mux.HandleFunc("POST /api/tasks/generate", s.handleGenerateTasks)
	s.mux.HandleFunc("POST /api/tasks/{task_id}/complete", s.handleCompleteTask)
	s.mux.HandleFunc("POST /api/tasks/{task_id}/derive", s.handleDeriveTask)
	s.mux.HandleFunc("GET /api/tasks", s.handleListTasksForUser)
	s.mux.HandleFunc("GET /api/campaigns/{campaign_id}/tasks", s.handleListTasksForCampaign)

	s.mux.HandleFunc("GET /api/campaigns/{campaign_id}/history", s.handleListHistory)
	s.mux.HandleFunc("GET /api/history", s.handleListHistoryByWeek)
	s.mux.HandleFunc("POST /api/history/import", s.handleImportHistory)
	s.mux.HandleFunc("PUT /api/history/{record_id}/week", s.handleSetHistoryWeek)
	s.mux.HandleFunc("DELETE /api/history/{record_id}", s.handleDeleteHistory)
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}
	resp, err := s.campaigns.Handler.CreateCampaignHandler(r.Context(), resolveActingUser(r), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.campaigns.Handler.ListCampaignsHandler(
		r.Context(),
		query.Get("state"),
		query.Get("country"),
		query.Get("vertical"),
		query.Get("platform"),
		query.Get("owner"),
		query.Get("week"),
	)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.GetCampaignHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.UpdateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}
	resp, err := s.campaigns.Handler.UpdateCampaignHandler(r.Context(), resolveActingUser(r), r.PathValue("campaign_id"), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleArchiveCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.ArchiveCampaignHandler(r.Context(), resolveActingUser(r), r.PathValue("campaign_id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReactivateCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.ReactivateCampaignHandler(r.Context(), resolveActingUser(r), r.PathValue("campaign_id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateCreative(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.CreateCreativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}
	resp, err := s.campaigns.Handler.CreateCreativeHandler(r.Context(), resolveActingUser(r), r.PathValue("campaign_id"), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateCreative(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.UpdateCreativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}
	resp, err := s.campaigns.Handler.UpdateCreativeHandler(r.Context(), resolveActingUser(r), r.PathValue("creative_id"), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleActivateCreative(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.ActivateCreativeHandler(r.Context(), resolveActingUser(r), r.PathValue("creative_id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDiscardCreative(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.DiscardCreativeHandler(r.Context(), resolveActingUser(r), r.PathValue("creative_id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteCreative(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.DeleteCreativeHandler(r.Context(), resolveActingUser(r), r.PathValue("creative_id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReorderCreatives(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.ReorderCreativesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}
	resp, err := s.campaigns.Handler.ReorderCreativesHandler(r.Context(), resolveActingUser(r), r.PathValue("campaign_id"), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleResyncCreative(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.ResyncCreativeHandler(r.Context(), resolveActingUser(r), r.PathValue("creative_id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGenerateTasks(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.GenerateTasksHandler(r.Context())
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.CompleteTaskHandler(r.Context(), resolveActingUser(r), r.PathValue("task_id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeriveTask(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.DeriveTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}
	resp, err := s.campaigns.Handler.DeriveTaskHandler(r.Context(), resolveActingUser(r), r.PathValue("task_id"), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListTasksForUser(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	assignee := query.Get("assignee")
	if assignee == "" {
		assignee = resolveActingUser(r)
	}
	resp, err := s.campaigns.Handler.ListTasksForUserHandler(r.Context(), assignee, query.Get("role"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListTasksForCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.ListTasksForCampaignHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.ListHistoryHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListHistoryByWeek(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(r.URL.Query().Get("iso_week"))
	if err != nil || week < 1 || week > 53 {
		writeCampaignError(w, http.StatusBadRequest, "invalid_request", "iso_week must be between 1 and 53")
		return
	}
	resp, err := s.campaigns.Handler.ListHistoryByWeekHandler(r.Context(), week)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetHistoryWeek(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.SetHistoryWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_body", "request body must be valid JSON")
		return
	}
	resp, err := s.campaigns.Handler.SetHistoryWeekHandler(r.Context(), resolveActingUser(r), r.PathValue("record_id"), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleImportHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.ImportHistoryHandler(r.Context(), resolveActingUser(r), r.Body)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.campaigns.Handler.DeleteHistoryHandler(r.Context(), resolveActingUser(r), r.PathValue("record_id")); err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeCampaignDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, campaignerrors.ErrCampaignNotFound),
		errors.Is(err, campaignerrors.ErrCreativeNotFound),
		errors.Is(err, campaignerrors.ErrTaskNotFound),
		errors.Is(err, campaignerrors.ErrHistoryRecordNotFound):
		writeCampaignError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, campaignerrors.ErrInvalidCampaignInput),
		errors.Is(err, campaignerrors.ErrInvalidCreativeInput),
		errors.Is(err, campaignerrors.ErrInvalidTaskInput):
		writeCampaignError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, campaignerrors.ErrNegativeMetricValue):
		writeCampaignError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
	case errors.Is(err, campaignerrors.ErrInvalidStateTransition):
		writeCampaignError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, campaignerrors.ErrActiveCreativeLimit):
		writeCampaignError(w, http.StatusConflict, "limit_exceeded", err.Error())
	default:
		writeCampaignError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCampaignError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, campaignhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func resolveActingUser(r *http.Request) string {
	if fromHeader := strings.TrimSpace(r.Header.Get("X-Acting-User")); fromHeader != "" {
		return fromHeader
	}
	return "system"
}
