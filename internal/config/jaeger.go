package config

type JaegerConfig struct {
	Service   string `yaml:"service-name"`
	AgentAddr string `yaml:"agent-host-port"`
}

func (j *JaegerConfig) ServiceName() string {
	if j.Service == "" {
		return "open-rates"
	}
	return j.Service
}

func (j *JaegerConfig) AgentHostPort() string {
	return j.AgentAddr
}
