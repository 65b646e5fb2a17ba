package config

type BadgerConfig struct {
	Directory string `yaml:"dir"`
}

func (b *BadgerConfig) Dir() string {
	return b.Directory
}

func (b *BadgerConfig) Enabled() bool {
	return b.Directory != ""
}
