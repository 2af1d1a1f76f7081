// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crm

import (
	"context"
	"strings"

	"github.com/canonical/erp-service/internal/db"
	"github.com/canonical/erp-service/internal/events"
	"github.com/canonical/erp-service/internal/monitoring"
	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/types"
)

func (s *Service) ListLeads(ctx context.Context, tenantID string) ([]*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.ListLeads")
	defer span.End()

	return s.storage.ListLeads(ctx, tenantID)
}

func (s *Service) GetLead(ctx context.Context, tenantID, id string) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.GetLead")
	defer span.End()

	return s.storage.GetLead(ctx, tenantID, id)
}

// CreateLead records a new lead assigned to the caller.
func (s *Service) CreateLead(ctx context.Context, caller *types.User, req *LeadRequest) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.CreateLead")
	defer span.End()

	company := strings.TrimSpace(req.CompanyName)
	if company == "" {
		return nil, types.Invalid("company_name is required")
	}

	status := types.LeadStatus(strings.TrimSpace(req.Status))
	if status == "" {
		status = types.LeadProspect
	}
	if !status.Valid() {
		return nil, types.Invalid("invalid lead status %q", status)
	}

	return s.storage.CreateLead(
		ctx,
		&types.Lead{
			TenantID:         caller.TenantID,
			AssignedToUserID: &caller.ID,
			CompanyName:      company,
			ContactName:      strings.TrimSpace(req.ContactName),
			Email:            strings.TrimSpace(req.Email),
			Phone:            strings.TrimSpace(req.Phone),
			Status:           status,
			Stage:            strings.TrimSpace(req.Stage),
			Value:            req.Value,
		},
	)
}

func (s *Service) UpdateLead(ctx context.Context, tenantID, id string, req *LeadUpdateRequest) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.UpdateLead")
	defer span.End()

	l := &types.Lead{ID: id}
	paths := make([]string, 0, 8)

	if req.CompanyName != nil {
		l.CompanyName = strings.TrimSpace(*req.CompanyName)
		if l.CompanyName == "" {
			return nil, types.Invalid("company_name cannot be empty")
		}
		paths = append(paths, "company_name")
	}
	if req.ContactName != nil {
		l.ContactName = strings.TrimSpace(*req.ContactName)
		paths = append(paths, "contact_name")
	}
	if req.Email != nil {
		l.Email = strings.TrimSpace(*req.Email)
		paths = append(paths, "email")
	}
	if req.Phone != nil {
		l.Phone = strings.TrimSpace(*req.Phone)
		paths = append(paths, "phone")
	}
	if req.Status != nil {
		l.Status = types.LeadStatus(strings.TrimSpace(*req.Status))
		if !l.Status.Valid() {
			return nil, types.Invalid("invalid lead status %q", l.Status)
		}
		paths = append(paths, "status")
	}
	if req.Stage != nil {
		l.Stage = strings.TrimSpace(*req.Stage)
		paths = append(paths, "stage")
	}
	if req.Value != nil {
		l.Value = *req.Value
		paths = append(paths, "value")
	}
	if req.AssignedToUserID != nil {
		assignee, err := s.assigneeRef(ctx, tenantID, *req.AssignedToUserID)
		if err != nil {
			return nil, err
		}
		l.AssignedToUserID = assignee
		paths = append(paths, "assigned_to_user_id")
	}

	return s.storage.UpdateLead(ctx, tenantID, l, paths)
}

// assigneeRef resolves a lead owner within the tenant, an empty id unassigns the lead.
func (s *Service) assigneeRef(ctx context.Context, tenantID, id string) (*string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}

	u, err := s.storage.GetTenantUser(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	return &u.ID, nil
}

func (s *Service) DeleteLead(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "crm.Service.DeleteLead")
	defer span.End()

	return s.storage.DeleteLead(ctx, tenantID, id)
}

// ConvertLead turns a lead into a customer and a project in one transaction.
// The lead row stays locked until commit, a second conversion fails with a conflict.
func (s *Service) ConvertLead(ctx context.Context, tenantID, id string) (*Conversion, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.ConvertLead")
	defer span.End()

	result := new(Conversion)

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		lead, err := s.storage.GetLeadForUpdate(ctx, tenantID, id)
		if err != nil {
			return err
		}

		if lead.Converted() {
			return types.Conflict("lead %s already converted", lead.ID)
		}

		customerCode, err := s.storage.NextCode(ctx, tenantID, storage.SequenceCustomer.WithPrefix(CustomerCodePrefix(lead.CompanyName)))
		if err != nil {
			return err
		}

		customer, err := s.storage.CreateCustomer(
			ctx,
			&types.Customer{
				TenantID:     tenantID,
				Name:         lead.CompanyName,
				Code:         customerCode,
				SourceLeadID: &lead.ID,
			},
		)
		if err != nil {
			return err
		}

		projectCode, err := s.storage.NextCode(ctx, tenantID, storage.SequenceProject)
		if err != nil {
			return err
		}

		project, err := s.storage.CreateProject(
			ctx,
			&types.Project{
				TenantID:     tenantID,
				CustomerID:   &customer.ID,
				SourceLeadID: &lead.ID,
				Name:         projectNamePrefix + lead.CompanyName,
				Code:         projectCode,
				Status:       types.ProjectStatusActive,
			},
		)
		if err != nil {
			return err
		}

		converted, err := s.storage.MarkLeadConverted(ctx, tenantID, lead.ID, customer.ID, project.ID)
		if err != nil {
			return err
		}

		result.Lead = converted
		result.Customer = customer
		result.Project = project

		db.AfterCommit(ctx, func() {
			payload := LeadConverted{LeadID: converted.ID, CustomerID: customer.ID, ProjectID: project.ID}
			if err := s.publisher.Publish(context.WithoutCancel(ctx), tenantID, events.LEAD_CONVERTED, payload); err != nil {
				s.logger.Errorf("failed to publish conversion of lead %s: %v", converted.ID, err)
			}
		})

		return nil
	})
	monitoring.RecordOutcome(s.monitor, monitoring.WorkflowLeadConversion, err)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("lead %s converted into customer %s and project %s", result.Lead.ID, result.Customer.Code, result.Project.Code)

	return result, nil
}
