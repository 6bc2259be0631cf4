package appconfig

import (
	"fmt"
	"strings"

	persistence "app/core/profile/adapters/persistence/mongo"
	"app/modules/authn"
	"app/modules/middleware/ratelimit"
	"app/modules/telemetry"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env string `env:"ENV" envDefault:"dev"`

	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8080"`

	// --- core infra ----
	Auth  authn.AuthConfig        `envPrefix:"AUTH_"`
	Mongo persistence.MongoConfig `envPrefix:"MONGO_"`

	// ExposeSubject keeps the owner's subject identifier on serialized
	// profiles. Off by default; public reads omit the subject.
	ExposeSubject bool `env:"PROFILE_EXPOSE_SUBJECT" envDefault:"false"`

	// --- middlewares ----
	RateLimit ratelimit.Config `envPrefix:"RATE_LIMIT_"`

	// --- otel ----
	// since it has special naming conventions, we do not use prefix here
	Otel telemetry.Config
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Central validation for rules env tags cannot express.
func validate(c *Config) error {
	if !strings.HasPrefix(c.Mongo.URI, "mongodb://") && !strings.HasPrefix(c.Mongo.URI, "mongodb+srv://") {
		return fmt.Errorf("appconfig: MONGO_URI must be a mongodb:// or mongodb+srv:// URI")
	}
	return nil
}
