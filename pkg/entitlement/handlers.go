// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/canonical/entitlement-service/internal/logging"
	"github.com/canonical/entitlement-service/internal/monitoring"
	"github.com/canonical/entitlement-service/internal/storage"
	"github.com/canonical/entitlement-service/internal/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type submitJobRequest struct {
	JobType string          `json:"jobType" validate:"required,oneof=create_tenant update_features check_limits sync_permissions generate_report"`
	Data    json.RawMessage `json:"data" validate:"required"`
}

type submitJobResponse struct {
	JobID  string `json:"jobId"`
	Status string `json:"status"`
}

type accessResponse struct {
	TenantID   string `json:"tenantId"`
	Feature    string `json:"feature"`
	Action     string `json:"action"`
	Role       string `json:"role"`
	Authorized bool   `json:"authorized"`
}

type API struct {
	service  ServiceInterface
	queue    QueueInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, queue QueueInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.queue = queue
	a.validate = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v1/jobs", a.submitJob)
	mux.Get("/api/v1/tenants/{id}", a.getTenant)
	mux.Get("/api/v1/tenants/{id}/access", a.checkAccess)
	mux.Post("/api/v1/tenants/{id}/reports", a.generateReport)
}

// submitJob accepts a lifecycle job and enqueues it for asynchronous
// processing. The handler only validates the envelope; payload validation
// happens in the worker.
func (a *API) submitJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlement.API.submitJob")
	defer span.End()

	var req submitJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validate.Struct(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid job request: %v", err), http.StatusBadRequest)
		return
	}

	jobID, err := a.queue.Enqueue(ctx, req.JobType, req.Data)
	if err != nil {
		a.logger.Errorf("failed to enqueue %s job: %v", req.JobType, err)
		http.Error(w, "Failed to enqueue job", http.StatusInternalServerError)
		return
	}

	a.writeJSON(w, http.StatusAccepted, submitJobResponse{JobID: jobID, Status: "queued"})
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlement.API.getTenant")
	defer span.End()

	tenant, err := a.service.GetTenant(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Tenant not found", http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to get tenant: %v", err)
		http.Error(w, "Failed to get tenant", http.StatusInternalServerError)
		return
	}

	a.writeJSON(w, http.StatusOK, tenant)
}

func (a *API) checkAccess(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlement.API.checkAccess")
	defer span.End()

	tenantID := chi.URLParam(r, "id")
	feature := r.URL.Query().Get("feature")
	action := r.URL.Query().Get("action")
	role := r.URL.Query().Get("role")

	if feature == "" || action == "" || role == "" {
		http.Error(w, "feature, action and role query parameters are required", http.StatusBadRequest)
		return
	}

	authorized, err := a.service.CheckFeatureAccess(ctx, tenantID, feature, action, role)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Tenant not found", http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to check feature access: %v", err)
		http.Error(w, "Failed to check access", http.StatusInternalServerError)
		return
	}

	a.writeJSON(w, http.StatusOK, accessResponse{
		TenantID:   tenantID,
		Feature:    feature,
		Action:     action,
		Role:       role,
		Authorized: authorized,
	})
}

// generateReport builds the report synchronously, unlike the queued
// generate_report job, so callers can fetch one on demand.
func (a *API) generateReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlement.API.generateReport")
	defer span.End()

	in := GenerateReportInput{TenantID: chi.URLParam(r, "id")}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		in.TenantID = chi.URLParam(r, "id")
	}

	report, err := a.service.GenerateReport(ctx, &in)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Tenant not found", http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to generate report: %v", err)
		http.Error(w, "Failed to generate report", http.StatusInternalServerError)
		return
	}

	a.writeJSON(w, http.StatusOK, report)
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
