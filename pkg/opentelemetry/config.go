package opentelemetry

import "time"

type Config struct {
	Enabled        bool              `mapstructure:"enabled" yaml:"enabled" default:"false"`
	ServiceName    string            `mapstructure:"service_name" yaml:"service_name" default:"approvalflow"`
	ServiceVersion string            `mapstructure:"service_version" yaml:"service_version"`
	Labels         map[string]string `mapstructure:"labels" yaml:"labels"`
	OTLP           struct {
		Headers  map[string]string `mapstructure:"headers" yaml:"headers"`
		Endpoint string            `mapstructure:"endpoint" yaml:"endpoint" default:"127.0.0.1:4317"`
	} `mapstructure:"otlp" yaml:"otlp"`
	// SamplingFraction is the share of root traces kept, between 0 and 1.
	SamplingFraction float64       `mapstructure:"sampling_fraction" yaml:"sampling_fraction" default:"1" validate:"gte=0,lte=1"`
	MetricInterval   time.Duration `mapstructure:"metric_interval" yaml:"metric_interval" default:"15s"`
}
