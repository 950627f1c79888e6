package domain

type ConnectionState string

const (
	ConnectionStateDisconnected ConnectionState = "disconnected"
	ConnectionStateConnecting   ConnectionState = "connecting"
	ConnectionStateConnected    ConnectionState = "connected"
	ConnectionStateReconnecting ConnectionState = "reconnecting"
)

type OperatingMode string

const (
	OperatingModeLive     OperatingMode = "live"
	OperatingModeDegraded OperatingMode = "degraded"
)

type SystemHealth struct {
	Status               string    `json:"status" yaml:"status"`
	Service              string    `json:"service" yaml:"service"`
	Database             string    `json:"database" yaml:"database"`
	WebsocketConnections int       `json:"websocket_connections" yaml:"websocket_connections"`
	Timestamp            Timestamp `json:"timestamp" yaml:"timestamp"`
}
