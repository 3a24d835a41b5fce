package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/domain/validation"
	"insurance_backoffice/internal/usecase"
	"insurance_backoffice/internal/usecase/interfaces"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", &usecase.ValidationError{Fields: validation.FieldErrors{"email": "required"}}, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"not found", &usecase.NotFoundError{Kind: entities.KindClaim, ID: 9}, http.StatusNotFound, "NOT_FOUND"},
		{"transition", &usecase.InvalidTransitionError{ClaimID: 1, From: entities.ClaimStatusPending, To: entities.ClaimStatusSettled}, http.StatusConflict, "INVALID_TRANSITION"},
		{"integrity", &usecase.IntegrityError{Field: "policyId", Ref: 4}, http.StatusConflict, "INTEGRITY_VIOLATION"},
		{"invalid id", usecase.ErrInvalidID, http.StatusBadRequest, "INVALID_ID"},
		{"unknown kind", usecase.ErrUnknownKind, http.StatusBadRequest, "UNKNOWN_KIND"},
		{"concurrent", fmt.Errorf("update: %w", interfaces.ErrConcurrentUpdate), http.StatusConflict, "CONCURRENT_UPDATE"},
		{"internal", errors.New("x"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}
}

func TestMapErrorDetails(t *testing.T) {
	got := mapError(&usecase.ValidationError{Fields: validation.FieldErrors{"email": "invalid_format", "phone": "required"}})
	if got.Details["email"] != "invalid_format" || got.Details["phone"] != "required" {
		t.Fatalf("unexpected details %+v", got.Details)
	}

	got = mapError(&usecase.InvalidTransitionError{From: entities.ClaimStatusRejected, To: entities.ClaimStatusApproved})
	if got.Details["from"] != "REJECTED" || got.Details["to"] != "APPROVED" {
		t.Fatalf("unexpected details %+v", got.Details)
	}
}
