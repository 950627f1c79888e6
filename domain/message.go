package domain

const (
	MessageTypeNewRequest       = "new_request"
	MessageTypeStatusUpdate     = "status_update"
	MessageTypeApprovalDecision = "approval_decision"
	MessageTypePing             = "ping"
)

// InboundMessage is a classified real-time payload. The set of implementations is closed to this
// package; anything unrecognised arrives as *UnknownMessage.
type InboundMessage interface {
	Type() string
	inboundMessage()
}

type NewRequestMessage struct {
	RequestID       int      `mapstructure:"request_id"`
	Title           string   `mapstructure:"title"`
	Message         string   `mapstructure:"message"`
	Priority        string   `mapstructure:"priority"`
	RequesterName   string   `mapstructure:"requester_name"`
	ReferenceNumber string   `mapstructure:"reference_number"`
	Amount          *float64 `mapstructure:"amount"`
}

type StatusUpdateMessage struct {
	RequestID       int    `mapstructure:"request_id"`
	Status          string `mapstructure:"status"`
	Title           string `mapstructure:"title"`
	DecidedBy       string `mapstructure:"decided_by"`
	Message         string `mapstructure:"message"`
	ReferenceNumber string `mapstructure:"reference_number"`
}

type ApprovalDecisionMessage struct {
	RequestID int    `mapstructure:"request_id"`
	Status    string `mapstructure:"status"`
	Title     string `mapstructure:"title"`
	DecidedBy string `mapstructure:"decided_by"`
	Message   string `mapstructure:"message"`
}

type PingMessage struct{}

// UnknownMessage keeps the raw payload of an unrecognised tag for logging.
type UnknownMessage struct {
	Tag string
	Raw []byte
}

func (*NewRequestMessage) Type() string       { return MessageTypeNewRequest }
func (*StatusUpdateMessage) Type() string     { return MessageTypeStatusUpdate }
func (*ApprovalDecisionMessage) Type() string { return MessageTypeApprovalDecision }
func (*PingMessage) Type() string             { return MessageTypePing }
func (m *UnknownMessage) Type() string        { return m.Tag }

func (*NewRequestMessage) inboundMessage()       {}
func (*StatusUpdateMessage) inboundMessage()     {}
func (*ApprovalDecisionMessage) inboundMessage() {}
func (*PingMessage) inboundMessage()             {}
func (*UnknownMessage) inboundMessage()          {}
