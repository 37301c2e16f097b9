package database

import "time"

// Config describes the bolt file. An empty FileName disables the database.
type Config struct {
	FileName string        `envconfig:"KDTREE_DB_FILE" toml:"file"`
	Timeout  time.Duration `envconfig:"KDTREE_DB_TIMEOUT" default:"1s" toml:"timeout"`
}

func (c Config) Enabled() bool {
	return c.FileName != ""
}
