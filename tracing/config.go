package tracing

import "time"

const (
	reconnectionPeriod = 30 * time.Second
	shutdownTimeout    = 5 * time.Second
)

// Config holds the configuration for the tracing system.
type Config struct {
	// Enable turns on span export. When false a no-op tracer is installed.
	Enable bool `yaml:"enable"`

	// SampleRate determines the sampling rate for traces, between 0.0 and 1.0.
	SampleRate float64 `yaml:"sample_rate" validate:"gte=0,lte=1" default:"1"`

	// ExporterHost is the hostname or IP address of the OTLP collector.
	ExporterHost string `yaml:"exporter_host" validate:"required" default:"localhost"`

	// ExporterPort is the gRPC port of the OTLP collector.
	ExporterPort int `yaml:"exporter_port" validate:"required" default:"4317"`

	// Tags is a map of custom key-value pairs added as resource attributes to all spans.
	Tags map[string]string `yaml:"tags"`
}
