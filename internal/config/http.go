package config

const defaultHTTPAddr = ":9090"

type HTTPConfig struct {
	ListenAddr string `yaml:"addr"`
}

func (h *HTTPConfig) Addr() string {
	if h.ListenAddr == "" {
		return defaultHTTPAddr
	}
	return h.ListenAddr
}
