package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	campaignservice "adtrack/contexts/campaign-ops/campaign-service"
	campaignhttp "adtrack/contexts/campaign-ops/campaign-service/transport/http"
)

func newTestServer() *Server {
	module := campaignservice.NewInMemoryModule(nil, nil)
	return New(module, nil, ":0")
}

func createTestCampaign(t *testing.T, server *Server, name string) campaignhttp.CampaignResponse {
	t.Helper()
	body := []byte(`{"name":"` + name + `","country":"PE","vertical":"CARGO","platform":"FB","segment":"ACQUISITION","owner_name":"Juan Perez"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/campaigns", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Acting-User", "ana")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp campaignhttp.CampaignResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestCreateCampaignRoute(t *testing.T) {
	server := newTestServer()
	resp := createTestCampaign(t, server, "Cargo Lima")
	if resp.Campaign.State != "pending" {
		t.Fatalf("expected pending, got %s", resp.Campaign.State)
	}
	if resp.Campaign.CampaignID == "" {
		t.Fatalf("expected a generated campaign id")
	}
}

func TestCreateCampaignRejectsMalformedBody(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/campaigns", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGetUnknownCampaignReturnsNotFound(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/campaigns/missing", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
	var errResp campaignhttp.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != "not_found" {
		t.Fatalf("expected not_found code, got %s", errResp.Code)
	}
}

func TestReactivatePendingCampaignConflicts(t *testing.T) {
	server := newTestServer()
	created := createTestCampaign(t, server, "Conflict Flow")

	req := httptest.NewRequest(http.MethodPost, "/api/campaigns/"+created.Campaign.CampaignID+"/reactivate", nil)
	req.Header.Set("X-Acting-User", "ana")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
	var errResp campaignhttp.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != "invalid_transition" {
		t.Fatalf("expected invalid_transition code, got %s", errResp.Code)
	}
}

func TestSixthCreativeReturnsLimitExceeded(t *testing.T) {
	server := newTestServer()
	created := createTestCampaign(t, server, "Limit Flow")

	post := func(name string) *httptest.ResponseRecorder {
		body := []byte(`{"file_name":"` + name + `","external_url":"https://cdn.example.com/` + name + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/campaigns/"+created.Campaign.CampaignID+"/creatives", bytes.NewReader(body))
		req.Header.Set("X-Acting-User", "ana")
		rr := httptest.NewRecorder()
		server.mux.ServeHTTP(rr, req)
		return rr
	}
	for _, name := range []string{"a.png", "b.png", "c.png", "d.png", "e.png"} {
		if rr := post(name); rr.Code != http.StatusCreated {
			t.Fatalf("creative %s: expected 201, got %d body=%s", name, rr.Code, rr.Body.String())
		}
	}
	rr := post("f.png")
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
	var errResp campaignhttp.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != "limit_exceeded" {
		t.Fatalf("expected limit_exceeded code, got %s", errResp.Code)
	}
}

func TestImportHistoryRoute(t *testing.T) {
	server := newTestServer()
	createTestCampaign(t, server, "Imported Cargo")

	csv := "campaign,iso_week,reach,clicks,leads,weekly_spend,drivers_registered,drivers_first_ride\n" +
		"Imported Cargo,21,1000,50,5,100,,\n"
	req := httptest.NewRequest(http.MethodPost, "/api/history/import", strings.NewReader(csv))
	req.Header.Set("X-Acting-User", "importer")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp campaignhttp.ImportHistoryResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Created != 1 || resp.Skipped != 0 {
		t.Fatalf("unexpected import counts: %+v", resp)
	}
}

func TestSetHistoryWeekRoute(t *testing.T) {
	server := newTestServer()
	created := createTestCampaign(t, server, "Week Move")

	csv := "campaign,iso_week,reach,clicks,leads,weekly_spend,drivers_registered,drivers_first_ride\n" +
		"Week Move,21,1000,50,5,100,,\n"
	importReq := httptest.NewRequest(http.MethodPost, "/api/history/import", strings.NewReader(csv))
	importReq.Header.Set("X-Acting-User", "importer")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, importReq)
	if rr.Code != http.StatusOK {
		t.Fatalf("import: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	listReq := httptest.NewRequest(http.MethodGet, "/api/campaigns/"+created.Campaign.CampaignID+"/history", nil)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, listReq)
	var history campaignhttp.ListHistoryResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history.Items) != 1 {
		t.Fatalf("expected one record, got %d", len(history.Items))
	}

	setReq := httptest.NewRequest(http.MethodPut, "/api/history/"+history.Items[0].RecordID+"/week", strings.NewReader(`{"iso_week":19}`))
	setReq.Header.Set("X-Acting-User", "admin")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, setReq)
	if rr.Code != http.StatusOK {
		t.Fatalf("set week: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var moved campaignhttp.WeeklyRecordResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &moved); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if moved.Record.ISOWeek != 19 {
		t.Fatalf("expected week 19, got %d", moved.Record.ISOWeek)
	}

	byWeekReq := httptest.NewRequest(http.MethodGet, "/api/history?iso_week=19", nil)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, byWeekReq)
	if rr.Code != http.StatusOK {
		t.Fatalf("by week: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var byWeek campaignhttp.ListHistoryResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &byWeek); err != nil {
		t.Fatalf("decode by-week list: %v", err)
	}
	if len(byWeek.Items) != 1 {
		t.Fatalf("expected the moved record, got %+v", byWeek.Items)
	}

	badReq := httptest.NewRequest(http.MethodGet, "/api/history?iso_week=99", nil)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, badReq)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an out-of-range week, got %d", rr.Code)
	}
}

func TestDeleteUnknownHistoryRecordReturnsNotFound(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodDelete, "/api/history/no-such-record", nil)
	req.Header.Set("X-Acting-User", "admin")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
