package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insurance_backoffice/internal/adapter/http/handlers/mocks"
	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/domain/validation"
	"insurance_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestClaimHandler_SubmitClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success is pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.POST("/v1/claims", h.SubmitClaim)

		in := entities.ClaimInput{Date: "2024-01-05", Description: "fender", ClaimedAmount: decimal.NewFromInt(500), PolicyID: 1}
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got entities.ClaimInput) (entities.Claim, error) {
			if got.Date != in.Date || !got.ClaimedAmount.Equal(in.ClaimedAmount) || got.PolicyID != 1 {
				t.Fatalf("unexpected input %+v", got)
			}
			return entities.Claim{
				ID:            1,
				Date:          time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
				Description:   "fender",
				ClaimedAmount: got.ClaimedAmount,
				Status:        entities.ClaimStatusPending,
				PolicyID:      1,
			}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/claims", bytes.NewBufferString(`{"date":"2024-01-05","description":"fender","claimedAmount":500,"policyId":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "PENDING" || body["date"] != "2024-01-05" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if _, ok := body["settledAmount"]; ok {
			t.Fatalf("expected no settledAmount, got %s", w.Body.String())
		}
	})

	t.Run("undecodable amount reaches use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := gin.New()
		r.POST("/v1/claims", h.SubmitClaim)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in entities.ClaimInput) (entities.Claim, error) {
			if in.Undecodable[validation.FieldClaimedAmount] != validation.CodeInvalidFormat || in.PolicyID != 99 {
				t.Fatalf("unexpected input %+v", in)
			}
			fe := validation.Claim(in)
			fe.Add(validation.FieldPolicyID, validation.CodeNotFound)
			return entities.Claim{}, &usecase.ValidationError{Fields: fe}
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/claims", bytes.NewBufferString(`{"date":"2024-13-05","description":"  ","claimedAmount":"abc","policyId":99}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Details map[string]string `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		want := map[string]string{
			"claimedAmount": "invalid_format",
			"date":          "invalid_format",
			"description":   "required",
			"policyId":      "not_found",
		}
		if len(body.Details) != len(want) {
			t.Fatalf("expected %d fields, got body %s", len(want), w.Body.String())
		}
		for k, v := range want {
			if body.Details[k] != v {
				t.Fatalf("expected %s=%s, got body %s", k, v, w.Body.String())
			}
		}
	})
}

func TestClaimHandler_TransitionClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(h *ClaimHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/claims/:id/transition", h.TransitionClaim)
		return r
	}

	t.Run("settle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		r := build(NewClaimHandler(uc))

		settled := decimal.NewFromInt(450)
		uc.EXPECT().Transition(gomock.Any(), int64(1), entities.ClaimStatusSettled, gomock.Any()).DoAndReturn(
			func(_ context.Context, id int64, status entities.ClaimStatus, amount *decimal.Decimal) (entities.Claim, error) {
				if amount == nil || !amount.Equal(settled) {
					t.Fatalf("expected settled amount 450, got %v", amount)
				}
				return entities.Claim{ID: id, Status: status, SettledAmount: amount, ClaimedAmount: decimal.NewFromInt(500)}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/1/transition", bytes.NewBufferString(`{"status":"SETTLED","settledAmount":450}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "SETTLED" || body["settledAmount"] != float64(450) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := build(NewClaimHandler(mocks.NewMockIClaimUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/1/transition", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		r := build(NewClaimHandler(uc))

		uc.EXPECT().Transition(gomock.Any(), int64(1), entities.ClaimStatusApproved, nil).Return(entities.Claim{}, &usecase.InvalidTransitionError{
			ClaimID: 1, From: entities.ClaimStatusRejected, To: entities.ClaimStatusApproved,
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/1/transition", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestClaimHandler_UpdateClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClaimUseCase(ctrl)
	h := NewClaimHandler(uc)

	r := gin.New()
	r.PATCH("/v1/claims/:id", h.UpdateClaim)

	uc.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).DoAndReturn(func(_ context.Context, id int64, p entities.ClaimPatch) (entities.Claim, error) {
		if p.Description == nil || *p.Description != "hail" || p.Status != nil || p.SettledAmount != nil {
			t.Fatalf("unexpected patch %+v", p)
		}
		return entities.Claim{ID: id, Description: "hail", Status: entities.ClaimStatusPending}, nil
	})

	req := httptest.NewRequest(http.MethodPatch, "/v1/claims/2", bytes.NewBufferString(`{"description":"hail"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestClaimHandler_GetClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewClaimHandler(mocks.NewMockIClaimUseCase(ctrl))

	r := gin.New()
	r.GET("/v1/claims/:id", h.GetClaim)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/claims/0", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
