// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"context"
	"strings"

	"github.com/canonical/erp-service/internal/storage"
	"github.com/canonical/erp-service/internal/types"
)

func (s *Service) CreateMilestone(ctx context.Context, tenantID, projectID string, req *MilestoneRequest) (*types.Milestone, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.CreateMilestone")
	defer span.End()

	m := &types.Milestone{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Status:      strings.TrimSpace(req.Status),
		SortOrder:   req.SortOrder,
	}
	if m.Name == "" {
		return nil, types.Invalid("name is required")
	}

	var err error
	if m.TargetDate, err = types.ParseDate(req.TargetDate, "target_date"); err != nil {
		return nil, err
	}

	project, err := s.storage.GetProject(ctx, tenantID, projectID)
	if err != nil {
		return nil, err
	}
	m.ProjectID = project.ID

	return s.storage.CreateMilestone(ctx, m)
}

func (s *Service) UpdateMilestone(ctx context.Context, tenantID, id string, req *MilestoneUpdateRequest) (*types.Milestone, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.UpdateMilestone")
	defer span.End()

	m := &types.Milestone{ID: id}
	paths := make([]string, 0, 5)

	if req.Name != nil {
		if m.Name = strings.TrimSpace(*req.Name); m.Name == "" {
			return nil, types.Invalid("name cannot be empty")
		}
		paths = append(paths, "name")
	}
	if req.Description != nil {
		m.Description = strings.TrimSpace(*req.Description)
		paths = append(paths, "description")
	}
	if req.TargetDate != nil {
		var err error
		if m.TargetDate, err = types.ParseDate(*req.TargetDate, "target_date"); err != nil {
			return nil, err
		}
		paths = append(paths, "target_date")
	}
	if req.Status != nil {
		m.Status = strings.TrimSpace(*req.Status)
		paths = append(paths, "status")
	}
	if req.SortOrder != nil {
		m.SortOrder = *req.SortOrder
		paths = append(paths, "sort_order")
	}

	return s.storage.UpdateMilestone(ctx, tenantID, m, paths)
}

// DeleteMilestone removes a milestone and its tasks.
func (s *Service) DeleteMilestone(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "projects.Service.DeleteMilestone")
	defer span.End()

	return s.storage.DeleteMilestone(ctx, tenantID, id)
}

// CreateTask adds a task to a milestone, the milestone must belong to the given project.
func (s *Service) CreateTask(ctx context.Context, tenantID, projectID, milestoneID string, req *TaskRequest) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.CreateTask")
	defer span.End()

	t := &types.Task{
		Name:           strings.TrimSpace(req.Name),
		Description:    strings.TrimSpace(req.Description),
		Status:         strings.TrimSpace(req.Status),
		SortOrder:      req.SortOrder,
		EstimatedHours: req.EstimatedHours,
	}
	if t.Name == "" {
		return nil, types.Invalid("name is required")
	}
	if err := nonNegative(t.EstimatedHours, "estimated_hours"); err != nil {
		return nil, err
	}

	var err error
	if t.StartDate, err = types.ParseDate(req.StartDate, "start_date"); err != nil {
		return nil, err
	}
	if t.EndDate, err = types.ParseDate(req.EndDate, "end_date"); err != nil {
		return nil, err
	}

	milestone, err := s.storage.GetMilestone(ctx, tenantID, milestoneID)
	if err != nil {
		return nil, err
	}
	if milestone.ProjectID != projectID {
		return nil, storage.ErrNotFound
	}
	t.MilestoneID = milestone.ID

	return s.storage.CreateTask(ctx, t)
}

func (s *Service) UpdateTask(ctx context.Context, tenantID, id string, req *TaskUpdateRequest) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.UpdateTask")
	defer span.End()

	t := &types.Task{ID: id}
	paths := make([]string, 0, 7)

	var err error

	if req.Name != nil {
		if t.Name = strings.TrimSpace(*req.Name); t.Name == "" {
			return nil, types.Invalid("name cannot be empty")
		}
		paths = append(paths, "name")
	}
	if req.Description != nil {
		t.Description = strings.TrimSpace(*req.Description)
		paths = append(paths, "description")
	}
	if req.Status != nil {
		t.Status = strings.TrimSpace(*req.Status)
		paths = append(paths, "status")
	}
	if req.SortOrder != nil {
		t.SortOrder = *req.SortOrder
		paths = append(paths, "sort_order")
	}
	if req.StartDate != nil {
		if t.StartDate, err = types.ParseDate(*req.StartDate, "start_date"); err != nil {
			return nil, err
		}
		paths = append(paths, "start_date")
	}
	if req.EndDate != nil {
		if t.EndDate, err = types.ParseDate(*req.EndDate, "end_date"); err != nil {
			return nil, err
		}
		paths = append(paths, "end_date")
	}
	if req.EstimatedHours != nil {
		if err := nonNegative(*req.EstimatedHours, "estimated_hours"); err != nil {
			return nil, err
		}
		t.EstimatedHours = *req.EstimatedHours
		paths = append(paths, "estimated_hours")
	}

	return s.storage.UpdateTask(ctx, tenantID, t, paths)
}

func (s *Service) DeleteTask(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "projects.Service.DeleteTask")
	defer span.End()

	return s.storage.DeleteTask(ctx, tenantID, id)
}
