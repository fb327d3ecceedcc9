// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/entitlement-service/internal/logging"
	"github.com/canonical/entitlement-service/internal/monitoring"
	"github.com/canonical/entitlement-service/internal/storage"
	"github.com/canonical/entitlement-service/internal/tracing"
	"github.com/canonical/entitlement-service/internal/types"
	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

func newTestAPI(t *testing.T) (*API, *MockServiceInterface, *MockQueueInterface, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockQueue := NewMockQueueInterface(ctrl)

	api := NewAPI(
		mockService,
		mockQueue,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	return api, mockService, mockQueue, mux
}

func TestAPI_SubmitJob(t *testing.T) {
	queueErr := errors.New("queue unavailable")

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockQueueInterface)
		expectedStatus int
	}{
		{
			name: "valid job is queued",
			body: `{"jobType": "check_limits", "data": {"tenantId": "tenant-1"}}`,
			setupMocks: func(mockQueue *MockQueueInterface) {
				mockQueue.EXPECT().Enqueue(gomock.Any(), types.JobTypeCheckLimits, gomock.Any()).Return("job-1", nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "unknown job type is rejected",
			body:           `{"jobType": "delete_tenant", "data": {}}`,
			setupMocks:     func(*MockQueueInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing data is rejected",
			body:           `{"jobType": "check_limits"}`,
			setupMocks:     func(*MockQueueInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body is rejected",
			body:           `{"jobType": `,
			setupMocks:     func(*MockQueueInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "enqueue failure maps to 500",
			body: `{"jobType": "sync_permissions", "data": {"tenantId": "tenant-1"}}`,
			setupMocks: func(mockQueue *MockQueueInterface) {
				mockQueue.EXPECT().Enqueue(gomock.Any(), types.JobTypeSyncPermissions, gomock.Any()).Return("", queueErr)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, mockQueue, mux := newTestAPI(t)
			tc.setupMocks(mockQueue)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}

			if tc.expectedStatus == http.StatusAccepted {
				var resp submitJobResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.JobID != "job-1" {
					t.Errorf("expected job-1, got %s", resp.JobID)
				}
				if resp.Status != "queued" {
					t.Errorf("expected queued status, got %s", resp.Status)
				}
			}
		})
	}
}

func TestAPI_GetTenant(t *testing.T) {
	testCases := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "found",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().GetTenant(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1", Name: "Acme"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().GetTenant(gomock.Any(), "tenant-1").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "storage failure",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().GetTenant(gomock.Any(), "tenant-1").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, _, mux := newTestAPI(t)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/tenant-1", nil)
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
		})
	}
}

func TestAPI_CheckAccess(t *testing.T) {
	testCases := []struct {
		name               string
		query              string
		setupMocks         func(*MockServiceInterface)
		expectedStatus     int
		expectedAuthorized bool
	}{
		{
			name:  "authorized",
			query: "?feature=reports&action=read&role=manager",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().CheckFeatureAccess(gomock.Any(), "tenant-1", "reports", "read", "manager").Return(true, nil)
			},
			expectedStatus:     http.StatusOK,
			expectedAuthorized: true,
		},
		{
			name:  "denied",
			query: "?feature=reports&action=delete&role=student",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().CheckFeatureAccess(gomock.Any(), "tenant-1", "reports", "delete", "student").Return(false, nil)
			},
			expectedStatus:     http.StatusOK,
			expectedAuthorized: false,
		},
		{
			name:           "missing parameters",
			query:          "?feature=reports",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "tenant not found",
			query: "?feature=reports&action=read&role=manager",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().CheckFeatureAccess(gomock.Any(), "tenant-1", "reports", "read", "manager").Return(false, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, _, mux := newTestAPI(t)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/tenant-1/access"+tc.query, nil)
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}

			if tc.expectedStatus == http.StatusOK {
				var resp accessResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Authorized != tc.expectedAuthorized {
					t.Errorf("expected authorized=%v, got %v", tc.expectedAuthorized, resp.Authorized)
				}
			}
		})
	}
}

func TestAPI_GenerateReport(t *testing.T) {
	_, mockService, _, mux := newTestAPI(t)

	mockService.EXPECT().GenerateReport(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *GenerateReportInput) (*types.Report, error) {
			if in.TenantID != "tenant-1" {
				t.Errorf("expected tenant id from the URL, got %s", in.TenantID)
			}
			if in.ReportType != types.ReportTypeUsage {
				t.Errorf("expected usage report type, got %s", in.ReportType)
			}
			return &types.Report{TenantID: in.TenantID, ReportType: in.ReportType}, nil
		})

	body := `{"tenantId": "spoofed", "reportType": "usage"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants/tenant-1/reports", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var report types.Report
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if report.TenantID != "tenant-1" {
		t.Errorf("expected tenant-1, got %s", report.TenantID)
	}
}

func TestAPI_GenerateReport_TenantNotFound(t *testing.T) {
	_, mockService, _, mux := newTestAPI(t)

	mockService.EXPECT().GenerateReport(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants/missing/reports", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}
