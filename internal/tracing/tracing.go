package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/logger"
)

type config interface {
	ServiceName() string
	AgentHostPort() string
}

// Init installs the global tracer. Without an agent address the tracer is a noop.
// Close the returned closer before exit to flush spans.
func Init(config config) (io.Closer, error) {
	cfg := jaegercfg.Configuration{
		ServiceName: config.ServiceName(),
		Disabled:    config.AgentHostPort() == "",
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: config.AgentHostPort(),
		},
	}

	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "cannot init tracing")
	}
	opentracing.SetGlobalTracer(tracer)

	if !cfg.Disabled {
		logger.Info("tracing enabled", zap.String("agent", config.AgentHostPort()))
	}
	return closer, nil
}
