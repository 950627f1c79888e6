package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/pkg/audit"
)

var (
	TestManager = domain.CreateUser{
		Email:      "manager@gov.dk",
		Name:       "Manager Jensen",
		Role:       domain.UserRoleManager,
		Department: "Administration",
	}
	TestEmployee = domain.CreateUser{
		Email:      "employee@gov.dk",
		Name:       "Medarbejder Hansen",
		Role:       domain.UserRoleEmployee,
		Department: "IT",
	}
)

type SeedResult struct {
	Users   []*domain.User          `json:"users" yaml:"users"`
	Created []*domain.User          `json:"created" yaml:"created"`
	Request *domain.ApprovalRequest `json:"request,omitempty" yaml:"request,omitempty"`
}

// SeedTestUsers creates the test manager and employee unless a user with the same email exists.
func (s *Service) SeedTestUsers(ctx context.Context) (*SeedResult, error) {
	existing, err := s.repo.ListUsers(ctx)
	if err != nil {
		s.activity.Record("Failed to create test users", domain.ActivityCategoryRejected)
		return nil, fmt.Errorf("listing users: %w", err)
	}
	byEmail := make(map[string]*domain.User, len(existing))
	for _, u := range existing {
		byEmail[strings.ToLower(u.Email)] = u
	}

	result := &SeedResult{}
	for _, data := range []domain.CreateUser{TestManager, TestEmployee} {
		if u, ok := byEmail[data.Email]; ok {
			result.Users = append(result.Users, u)
			continue
		}
		u, err := s.repo.CreateUser(ctx, data)
		if err != nil {
			s.activity.Record("Failed to create test users", domain.ActivityCategoryRejected)
			return nil, fmt.Errorf("creating %s: %w", data.Email, err)
		}
		s.recordAudit(ctx, audit.ActionUserCreate, u)
		result.Users = append(result.Users, u)
		result.Created = append(result.Created, u)
	}

	s.activity.Record("Test users created", domain.ActivityCategoryApproved)
	return result, nil
}

// SeedSampleRequest seeds the test users and files a sample request from the employee to the manager.
func (s *Service) SeedSampleRequest(ctx context.Context) (*SeedResult, error) {
	result, err := s.SeedTestUsers(ctx)
	if err != nil {
		return nil, err
	}
	manager, employee := result.Users[0], result.Users[1]

	amount := 5000.0
	r, err := s.repo.CreateRequest(ctx, domain.CreateApprovalRequest{
		Title:       "Test request - office equipment",
		Description: "Sample request for demonstrating the approval flow",
		Category:    "IT",
		Priority:    domain.PriorityMedium,
		Amount:      &amount,
		ApproverID:  manager.ID,
	}, employee.ID)
	if err != nil {
		return nil, fmt.Errorf("creating sample request: %w", err)
	}

	s.activity.Record(fmt.Sprintf("Sample request created: %s", r.Title), domain.ActivityCategoryPending)
	s.recordAudit(ctx, audit.ActionRequestCreate, r)
	s.refreshAfterChange(ctx)
	result.Request = r
	return result, nil
}
