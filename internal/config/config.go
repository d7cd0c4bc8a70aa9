package config

import (
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	// Environment selects the active profile at startup. There is no runtime
	// toggle; switching stores means restarting with different config.
	Environment string `json:",default=development"`

	Profiles map[string]Profile `json:",optional"`

	// ClickHouse, when set, replaces the relational cost-event table as the
	// source of the cost metric stream.
	ClickHouse struct {
		DSN string `json:",optional"`
	} `json:",optional"`

	Auth struct {
		Secret          string `json:",default=insight-dev-secret"`
		TokenTTLMinutes int    `json:",default=720"`
		Bootstrap       struct {
			Username string `json:",default=admin"`
			Password string `json:",default=admin"`
		} `json:",optional"`
	} `json:",optional"`

	Export struct {
		MaxRows int `json:",default=10000"`
	} `json:",optional"`
}

type Profile struct {
	// DataSource is a DSN understood by internal/db.Open. Empty falls back
	// to a local sqlite file.
	DataSource string `json:",optional"`
}

// DataSource resolves the active profile's DSN.
func (c Config) DataSource() string {
	return c.Profiles[c.Environment].DataSource
}
