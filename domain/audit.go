package domain

type ListAuditLogFilter struct {
	Actions   []string `mapstructure:"actions" json:"actions,omitempty"`
	Actor     string   `mapstructure:"actor" json:"actor,omitempty"`
	RequestID int      `mapstructure:"request_id" json:"request_id,omitempty"`
	Limit     int      `mapstructure:"limit" json:"limit,omitempty"`
}
