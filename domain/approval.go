package domain

import (
	"strings"
	"time"
)

const (
	ApprovalStatusPending   = "pending"
	ApprovalStatusApproved  = "approved"
	ApprovalStatusRejected  = "rejected"
	ApprovalStatusEscalated = "escalated"
	ApprovalStatusCancelled = "cancelled"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	DefaultCurrency             = "DKK"
	DefaultConfidentialityLevel = "normal"
)

var (
	ApprovalStatuses = []string{
		ApprovalStatusPending,
		ApprovalStatusApproved,
		ApprovalStatusRejected,
		ApprovalStatusEscalated,
		ApprovalStatusCancelled,
	}
	Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
)

type ApprovalRequest struct {
	ID                   int        `json:"id" yaml:"id"`
	Title                string     `json:"title" yaml:"title"`
	Description          string     `json:"description" yaml:"description"`
	Category             string     `json:"category" yaml:"category"`
	Priority             string     `json:"priority" yaml:"priority"`
	Status               string     `json:"status" yaml:"status"`
	Amount               *float64   `json:"amount,omitempty" yaml:"amount,omitempty"`
	Currency             string     `json:"currency,omitempty" yaml:"currency,omitempty"`
	RequesterID          int        `json:"requester_id" yaml:"requester_id"`
	ApproverID           int        `json:"approver_id" yaml:"approver_id"`
	ReferenceNumber      string     `json:"reference_number,omitempty" yaml:"reference_number,omitempty"`
	ExternalReference    string     `json:"external_reference,omitempty" yaml:"external_reference,omitempty"`
	ConfidentialityLevel string     `json:"confidentiality_level" yaml:"confidentiality_level"`
	DueDate              *Timestamp `json:"due_date,omitempty" yaml:"due_date,omitempty"`

	Requester *User      `json:"requester,omitempty" yaml:"requester,omitempty"`
	Approver  *User      `json:"approver,omitempty" yaml:"approver,omitempty"`
	Comments  []*Comment `json:"comments" yaml:"comments,omitempty"`

	CreatedAt  Timestamp  `json:"created_at" yaml:"created_at"`
	UpdatedAt  *Timestamp `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	ApprovedAt *Timestamp `json:"approved_at,omitempty" yaml:"approved_at,omitempty"`
}

// Clone returns a deep copy of the request, comments and user snapshots included.
func (r *ApprovalRequest) Clone() *ApprovalRequest {
	if r == nil {
		return nil
	}
	c := *r
	if r.Amount != nil {
		amount := *r.Amount
		c.Amount = &amount
	}
	c.DueDate = r.DueDate.clone()
	c.UpdatedAt = r.UpdatedAt.clone()
	c.ApprovedAt = r.ApprovedAt.clone()
	c.Requester = r.Requester.Clone()
	c.Approver = r.Approver.Clone()
	if r.Comments != nil {
		c.Comments = make([]*Comment, 0, len(r.Comments))
		for _, comment := range r.Comments {
			c.Comments = append(c.Comments, comment.Clone())
		}
	}
	return &c
}

func (r *ApprovalRequest) IsTerminal() bool {
	return IsTerminalStatus(r.Status)
}

// IsOverdue reports whether a pending request has passed its due date.
func (r *ApprovalRequest) IsOverdue(now time.Time) bool {
	return r.Status == ApprovalStatusPending && r.DueDate != nil && r.DueDate.Before(now)
}

func (r *ApprovalRequest) DaysOverdue(now time.Time) int {
	if !r.IsOverdue(now) {
		return 0
	}
	return int(now.Sub(r.DueDate.Time).Hours() / 24)
}

// MatchesSearch reports whether term occurs in the title or the description, ignoring case.
func (r *ApprovalRequest) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Description), term)
}

func IsTerminalStatus(status string) bool {
	switch status {
	case ApprovalStatusApproved, ApprovalStatusRejected, ApprovalStatusCancelled:
		return true
	}
	return false
}

func IsValidStatus(status string) bool {
	for _, s := range ApprovalStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type CreateApprovalRequest struct {
	Title                string     `json:"title" yaml:"title" validate:"required,notblank"`
	Description          string     `json:"description" yaml:"description"`
	Category             string     `json:"category" yaml:"category" validate:"required"`
	Priority             string     `json:"priority" yaml:"priority" default:"medium" validate:"oneof=low medium high urgent"`
	Amount               *float64   `json:"amount,omitempty" yaml:"amount,omitempty" validate:"omitempty,gte=0"`
	ApproverID           int        `json:"approver_id" yaml:"approver_id" validate:"required,gt=0"`
	DueDate              *Timestamp `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	ExternalReference    string     `json:"external_reference,omitempty" yaml:"external_reference,omitempty"`
	ConfidentialityLevel string     `json:"confidentiality_level,omitempty" yaml:"confidentiality_level,omitempty" default:"normal"`
}

type UpdateApprovalRequest struct {
	Status     string `json:"status" yaml:"status" validate:"required,oneof=approved rejected escalated"`
	Comment    string `json:"comment,omitempty" yaml:"comment,omitempty"`
	ApproverID int    `json:"approver_id,omitempty" yaml:"approver_id,omitempty" validate:"omitempty,gt=0"`
}

// IsDestructive reports whether the update ends the approval flow and therefore needs confirmation.
func (u UpdateApprovalRequest) IsDestructive() bool {
	return u.Status == ApprovalStatusApproved || u.Status == ApprovalStatusRejected
}

type ListApprovalRequestsFilter struct {
	Skip        int    `mapstructure:"skip" json:"skip" validate:"gte=0"`
	Limit       int    `mapstructure:"limit" json:"limit" default:"12" validate:"gt=0,lte=100"`
	Status      string `mapstructure:"status" json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected escalated cancelled"`
	Priority    string `mapstructure:"priority" json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Category    string `mapstructure:"category" json:"category,omitempty"`
	Search      string `mapstructure:"search" json:"search,omitempty"`
	RequesterID int    `mapstructure:"requester_id" json:"requester_id,omitempty" validate:"gte=0"`
	ApproverID  int    `mapstructure:"approver_id" json:"approver_id,omitempty" validate:"gte=0"`
}

type ApprovalRequestList struct {
	Requests []*ApprovalRequest `json:"requests" yaml:"requests"`
	Total    int                `json:"total" yaml:"total"`
	Page     int                `json:"page" yaml:"page"`
	PerPage  int                `json:"per_page" yaml:"per_page"`
}
