package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"insurance_backoffice/internal/adapter/http/handlers/mocks"
	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc, 0)

		r := gin.New()
		r.GET("/v1/dashboard", h.Summary)

		uc.EXPECT().Summary(gomock.Any(), usecase.DefaultRecentLimit).Return(usecase.DashboardSummary{
			Counts:          usecase.Counts{Customers: 1, Policies: 1, Claims: 1},
			RecentCustomers: []entities.Customer{{ID: 1}},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Counts map[string]int `json:"counts"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Counts["customerCount"] != 1 || body.Counts["policyCount"] != 1 || body.Counts["claimCount"] != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("explicit limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc, 5)

		r := gin.New()
		r.GET("/v1/dashboard", h.Summary)

		uc.EXPECT().Summary(gomock.Any(), 2).Return(usecase.DashboardSummary{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/dashboard?limit=2", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewDashboardHandler(mocks.NewMockIDashboardUseCase(ctrl), 5)

		r := gin.New()
		r.GET("/v1/dashboard", h.Summary)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/dashboard?limit=-1", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_Counts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc, 5)

		r := gin.New()
		r.GET("/v1/dashboard/counts", h.Counts)

		uc.EXPECT().Counts(gomock.Any()).Return(usecase.Counts{Customers: 3, Policies: 2, Claims: 1}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/dashboard/counts", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]int
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["customerCount"] != 3 || body["policyCount"] != 2 || body["claimCount"] != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc, 5)

		r := gin.New()
		r.GET("/v1/dashboard/counts", h.Counts)

		uc.EXPECT().Counts(gomock.Any()).Return(usecase.Counts{}, errors.New("db"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/dashboard/counts", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_Recent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewDashboardHandler(mocks.NewMockIDashboardUseCase(ctrl), 5)

		r := gin.New()
		r.GET("/v1/dashboard/recent/:kind", h.Recent)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/dashboard/recent/invoices", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc, 5)

		r := gin.New()
		r.GET("/v1/dashboard/recent/:kind", h.Recent)

		uc.EXPECT().Recent(gomock.Any(), entities.KindClaim, 3).Return(usecase.RecentItems{
			Kind:   entities.KindClaim,
			Claims: []entities.Claim{{ID: 9}, {ID: 8}},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/dashboard/recent/claims?n=3", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Kind  string           `json:"kind"`
			Items []map[string]any `json:"items"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Kind != "claim" || len(body.Items) != 2 || body.Items[0]["id"] != float64(9) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
