package domain

type ApprovalStats struct {
	TotalRequests          int            `json:"total_requests" yaml:"total_requests"`
	PendingRequests        int            `json:"pending_requests" yaml:"pending_requests"`
	ApprovedRequests       int            `json:"approved_requests" yaml:"approved_requests"`
	RejectedRequests       int            `json:"rejected_requests" yaml:"rejected_requests"`
	AvgProcessingTimeHours float64        `json:"avg_processing_time_hours" yaml:"avg_processing_time_hours"`
	RequestsByPriority     map[string]int `json:"requests_by_priority" yaml:"requests_by_priority"`
	RequestsByCategory     map[string]int `json:"requests_by_category" yaml:"requests_by_category"`
}

type OverdueRequest struct {
	ID              int       `json:"id" yaml:"id"`
	Title           string    `json:"title" yaml:"title"`
	ReferenceNumber string    `json:"reference_number" yaml:"reference_number"`
	DueDate         Timestamp `json:"due_date" yaml:"due_date"`
	DaysOverdue     int       `json:"days_overdue" yaml:"days_overdue"`
	Approver        string    `json:"approver" yaml:"approver"`
}

type OverdueRequests struct {
	Count    int               `json:"count" yaml:"count"`
	Requests []*OverdueRequest `json:"requests" yaml:"requests"`
}
