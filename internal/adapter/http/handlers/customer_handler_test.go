package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"insurance_backoffice/internal/adapter/http/handlers/mocks"
	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/domain/validation"
	"insurance_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc, mocks.NewMockIPolicyUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/customers", h.CreateCustomer)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error lists fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc, mocks.NewMockIPolicyUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/customers", h.CreateCustomer)

		uc.EXPECT().Create(gomock.Any(), entities.CustomerInput{Email: "nope"}).Return(entities.Customer{}, &usecase.ValidationError{Fields: validation.FieldErrors{
			validation.FieldFirstName: validation.CodeRequired,
			validation.FieldEmail:     validation.CodeInvalidFormat,
		}})

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "VALIDATION_FAILED" || body.Details["firstName"] != "required" || body.Details["email"] != "invalid_format" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc, mocks.NewMockIPolicyUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/customers", h.CreateCustomer)

		in := entities.CustomerInput{FirstName: "Amal", LastName: "B", Email: "a@b.com", Address: "x", Phone: "1"}
		uc.EXPECT().Create(gomock.Any(), in).Return(entities.Customer{ID: 1, FirstName: "Amal", LastName: "B", Email: "a@b.com", Address: "x", Phone: "1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(`{"firstName":"Amal","lastName":"B","email":"a@b.com","address":"x","phone":"1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != float64(1) || body["firstName"] != "Amal" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCustomerHandler_UpdateCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc, mocks.NewMockIPolicyUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/customers/:id", h.UpdateCustomer)

		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/abc", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc, mocks.NewMockIPolicyUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/customers/:id", h.UpdateCustomer)

		uc.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).Return(entities.Customer{}, &usecase.NotFoundError{Kind: entities.KindCustomer, ID: 7})

		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/7", bytes.NewBufferString(`{"phone":"2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("patch carries only sent fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc, mocks.NewMockIPolicyUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/customers/:id", h.UpdateCustomer)

		uc.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, p entities.CustomerPatch) (entities.Customer, error) {
			if p.Phone == nil || *p.Phone != "2" || p.Email != nil {
				t.Fatalf("unexpected patch %+v", p)
			}
			return entities.Customer{ID: 1, Phone: "2"}, nil
		})

		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/1", bytes.NewBufferString(`{"phone":"2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_ListCustomerPolicies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	policies := mocks.NewMockIPolicyUseCase(ctrl)
	h := NewCustomerHandler(mocks.NewMockICustomerUseCase(ctrl), policies)

	r := gin.New()
	r.GET("/v1/customers/:id/policies", h.ListCustomerPolicies)

	policies.EXPECT().ListByCustomerID(gomock.Any(), int64(3)).Return([]entities.Policy{{ID: 1, CustomerID: 3, Type: entities.PolicyTypeLife}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/customers/3/policies", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["type"] != "life" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}
