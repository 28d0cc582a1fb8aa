package main

import (
	"os"

	"github.com/tryanzu/storefront/deps"
)

// container is filled before any command runs.
var container deps.Deps

func bootstrap() error {
	envfile := os.Getenv("ENV_FILE")
	if envfile == "" {
		envfile = "./env.json"
	}

	// Run config service bootstraping sequences.
	conf, err := deps.LoadConfig(envfile)
	if err != nil {
		return err
	}

	// Run dependencies bootstraping sequences.
	container, err = deps.Bootstrap(deps.Deps{ConfigProvider: conf})
	return err
}
