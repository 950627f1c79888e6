package jobs

import (
	"github.com/mitchellh/mapstructure"
)

type Type string

const (
	TypeHealthProbe  Type = "health_probe"
	TypePendingCount Type = "pending_count"
	TypeRefresh      Type = "refresh"
)

var Types = []Type{
	TypeHealthProbe,
	TypePendingCount,
	TypeRefresh,
}

type Job struct {
	Enabled bool   `mapstructure:"enabled"`
	Config  Config `mapstructure:"config"`
}

type Config map[string]interface{}

func (c Config) Decode(v interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           v,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(c)
}
