package mongo

type (
	// Note: For env parsing to work, we must export all struct fields
	MongoConfig struct {
		URI        string `env:"URI"        envDefault:"mongodb://localhost:27017"`
		Database   string `env:"DATABASE"   envDefault:"profiles"`
		Collection string `env:"COLLECTION" envDefault:"user_profiles"`
	}
)
