package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/animalcatalog/internal/flagx"
)

// defaultEnvFile is loaded when present and -env is not given.
const defaultEnvFile = ".env"

// parseEnv seeds the process environment from a dotenv file and overlays
// config with any variables that are set. Variables already present in the
// environment win over the file. An explicit -env file that cannot be read
// panics; a missing default .env is ignored.
func parseEnv(config *Config, args []string) {
	path := flagx.EnvFile(args)
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
