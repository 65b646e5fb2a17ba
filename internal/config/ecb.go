package config

const defaultEcbURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"

type EcbConfig struct {
	DailyURL string `yaml:"url"`
}

func (e *EcbConfig) URL() string {
	if e.DailyURL == "" {
		return defaultEcbURL
	}
	return e.DailyURL
}
