package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"afairytale/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResidentService implements domain.ResidentService for handler tests.
type fakeResidentService struct {
	listErr    error
	getErr     error
	createErr  error
	updateErr  error
	deleteErr  error
	residents  []*domain.Resident
	lastUpdate domain.ResidentUpdate
	updated    *domain.Resident
}

func (f *fakeResidentService) ListResidents(ctx context.Context) ([]*domain.Resident, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.residents == nil {
		return []*domain.Resident{}, nil
	}
	return f.residents, nil
}

func (f *fakeResidentService) GetResidentByID(ctx context.Context, id string) (*domain.Resident, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, res := range f.residents {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeResidentService) CreateResident(ctx context.Context, resident *domain.Resident) error {
	if f.createErr != nil {
		return f.createErr
	}
	resident.ID = "res-created"
	return nil
}

func (f *fakeResidentService) UpdateResident(ctx context.Context, id string, update domain.ResidentUpdate) (*domain.Resident, error) {
	f.lastUpdate = update
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeResidentService) DeleteResident(ctx context.Context, id string) error {
	return f.deleteErr
}

func TestResidentController_CreateResident(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		checkResident  func(t *testing.T, res domain.Resident)
	}{
		{
			name:       "success",
			body:       `{"name":"Mab","role":"DJ","bio":"Spins at dawn."}`,
			wantStatus: http.StatusCreated,
			checkResident: func(t *testing.T, res domain.Resident) {
				assert.Equal(t, "res-created", res.ID)
				assert.Equal(t, "Mab", res.Name)
				assert.Equal(t, "DJ", res.Role)
				require.NotNil(t, res.Bio)
				assert.Equal(t, "Spins at dawn.", *res.Bio)
			},
		},
		{
			name:           "missing name and role",
			body:           `{"bio":"anonymous"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "name is required",
		},
		{
			name:           "bad request invalid json",
			body:           `not json`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid",
		},
		{
			name:           "service error",
			body:           `{"name":"Mab","role":"DJ"}`,
			fakeErr:        errors.New("db down"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "Failed to create resident",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeResidentService{createErr: tt.fakeErr}
			ctrl := NewResidentController(testLogger(), fake)
			req := httptest.NewRequest(http.MethodPost, "/residents", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.CreateResident(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantBodySubstr != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBodySubstr, "response body")
			}
			if tt.checkResident != nil && tt.wantStatus == http.StatusCreated {
				var res domain.Resident
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
				tt.checkResident(t, res)
			}
		})
	}
}

func TestResidentController_GetResident(t *testing.T) {
	existing := &domain.Resident{ID: "res-1", Name: "Robin", Role: "Promoter"}

	tests := []struct {
		name           string
		residentID     string
		getErr         error
		wantStatus     int
		wantBodySubstr string
	}{
		{name: "found", residentID: "res-1", wantStatus: http.StatusOK, wantBodySubstr: "Robin"},
		{name: "not found", residentID: "res-404", wantStatus: http.StatusNotFound, wantBodySubstr: "Resident not found"},
		{name: "service error", residentID: "res-1", getErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantBodySubstr: "Failed to fetch resident"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeResidentService{residents: []*domain.Resident{existing}, getErr: tt.getErr}
			ctrl := NewResidentController(testLogger(), fake)
			req := httptest.NewRequest(http.MethodGet, "/residents/"+tt.residentID, nil)
			req.SetPathValue("residentID", tt.residentID)
			rr := httptest.NewRecorder()

			ctrl.GetResident(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Contains(t, rr.Body.String(), tt.wantBodySubstr, "response body")
		})
	}
}

func TestResidentController_UpdateResident(t *testing.T) {
	updated := &domain.Resident{ID: "res-1", Name: "Robin", Role: "Resident DJ"}

	tests := []struct {
		name           string
		body           string
		updateErr      error
		wantStatus     int
		wantBodySubstr string
		checkUpdate    func(t *testing.T, u domain.ResidentUpdate)
	}{
		{
			name:       "role only",
			body:       `{"role":"Resident DJ"}`,
			wantStatus: http.StatusOK,
			checkUpdate: func(t *testing.T, u domain.ResidentUpdate) {
				require.NotNil(t, u.Role)
				assert.Equal(t, "Resident DJ", *u.Role)
				assert.Nil(t, u.Name)
				assert.False(t, u.Bio.Set)
			},
		},
		{
			name:       "explicit null clears image",
			body:       `{"image":null}`,
			wantStatus: http.StatusOK,
			checkUpdate: func(t *testing.T, u domain.ResidentUpdate) {
				assert.True(t, u.Image.Set, "image: null must reach the service as a set field")
				assert.Nil(t, u.Image.Value, "image: null must clear the value")
				assert.False(t, u.Bio.Set)
			},
		},
		{
			name:           "empty body rejected",
			body:           `{}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "no update data provided",
		},
		{
			name:           "not found",
			body:           `{"role":"DJ"}`,
			updateErr:      domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "Resident not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeResidentService{updateErr: tt.updateErr, updated: updated}
			ctrl := NewResidentController(testLogger(), fake)
			req := httptest.NewRequest(http.MethodPut, "/residents/res-1", bytes.NewBufferString(tt.body))
			req.SetPathValue("residentID", "res-1")
			rr := httptest.NewRecorder()

			ctrl.UpdateResident(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantBodySubstr != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBodySubstr, "response body")
			}
			if tt.checkUpdate != nil {
				tt.checkUpdate(t, fake.lastUpdate)
			}
		})
	}
}

func TestResidentController_DeleteResident(t *testing.T) {
	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusNoContent},
		{name: "not found", deleteErr: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "service error", deleteErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewResidentController(testLogger(), &fakeResidentService{deleteErr: tt.deleteErr})
			req := httptest.NewRequest(http.MethodDelete, "/residents/res-1", nil)
			req.SetPathValue("residentID", "res-1")
			rr := httptest.NewRecorder()

			ctrl.DeleteResident(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
		})
	}
}
