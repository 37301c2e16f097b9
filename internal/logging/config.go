package logging

type Config struct {
	Level       string `envconfig:"KDTREE_LOG_LEVEL" default:"info" toml:"level"`
	Development bool   `envconfig:"KDTREE_LOG_DEVELOPMENT" default:"false" toml:"development"`
}
