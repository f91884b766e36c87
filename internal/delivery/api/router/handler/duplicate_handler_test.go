package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/matching"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDuplicateHandler_FindDuplicates(t *testing.T) {
	fx := newAPIFixtures(t)
	customerID := uuid.New()
	match := &usecase.DuplicateMatch{
		DuplicateCandidate: &entity.DuplicateCandidate{
			ReferenceID: customerID,
			Candidate:   entity.CustomerSummary{ID: uuid.New(), Name: "Suzuki"},
			Confidence:  95,
			Signals:     []string{matching.LabelEmail, matching.LabelPhone},
		},
		Likelihood: matching.Likely,
	}

	fx.duplicateUC.EXPECT().FindDuplicates(mock.Anything, fx.actor, customerID).Return([]*usecase.DuplicateMatch{match}, nil)

	rec, resp := fx.do(t, http.MethodGet, "/api/v1/customers/"+customerID.String()+"/duplicates", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData[[]usecase.DuplicateMatch](t, resp)
	require.Len(t, data, 1)
	assert.Equal(t, 95, data[0].Confidence)
	assert.Equal(t, matching.Likely, data[0].Likelihood)
	assert.Equal(t, []string{matching.LabelEmail, matching.LabelPhone}, data[0].Signals)
}

func TestDuplicateHandler_FindDuplicates_Empty(t *testing.T) {
	fx := newAPIFixtures(t)
	customerID := uuid.New()

	fx.duplicateUC.EXPECT().FindDuplicates(mock.Anything, fx.actor, customerID).Return(nil, nil)

	rec, resp := fx.do(t, http.MethodGet, "/api/v1/customers/"+customerID.String()+"/duplicates", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(resp.Data))
}

func TestDuplicateHandler_FindDuplicates_CustomerNotFound(t *testing.T) {
	fx := newAPIFixtures(t)
	customerID := uuid.New()

	fx.duplicateUC.EXPECT().
		FindDuplicates(mock.Anything, fx.actor, customerID).
		Return(nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "failed to find reference customer"))

	rec, resp := fx.do(t, http.MethodGet, "/api/v1/customers/"+customerID.String()+"/duplicates", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", resp.Error.Code)
}

func TestAPI_RequiresBearerToken(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz"},
		{name: "invalid token", header: "Bearer expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/"+uuid.NewString()+"/duplicates", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			fx.server.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
			assert.NotContains(t, rec.Body.String(), "details")
		})
	}

	fx.duplicateUC.AssertNotCalled(t, "FindDuplicates", mock.Anything, mock.Anything, mock.Anything)
}
