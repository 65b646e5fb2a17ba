package config

const defaultFixerURL = "https://api.apilayer.com/fixer/latest"

type FixerConfig struct {
	FixerApiKey string `yaml:"api-key"`
	LatestURL   string `yaml:"url"`
}

func (f *FixerConfig) ApiKey() string {
	return f.FixerApiKey
}

func (f *FixerConfig) URL() string {
	if f.LatestURL == "" {
		return defaultFixerURL
	}
	return f.LatestURL
}

func (f *FixerConfig) Enabled() bool {
	return f.FixerApiKey != ""
}
