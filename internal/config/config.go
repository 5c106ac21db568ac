// Package config reads the function configuration from the environment.
package config

import "github.com/kelseyhightower/envconfig"

// Config is the full environment surface of the function. The two *_PARAM
// entries name SSM parameters that, when set, override the plain values at
// cold start so the selection can be changed without redeploying.
type Config struct {
	DistributionIDs      string `envconfig:"DISTRIBUTION_IDS" default:"*"`
	ObjectPaths          string `envconfig:"OBJECT_PATHS" default:"/*"`
	DistributionIDsParam string `envconfig:"DISTRIBUTION_IDS_PARAM"`
	ObjectPathsParam     string `envconfig:"OBJECT_PATHS_PARAM"`
}

func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
