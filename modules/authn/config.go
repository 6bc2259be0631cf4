package authn

type (
	// Note: For env parsing to work, we must export all struct fields
	AuthConfig struct {
		// PublicKey is the base64-encoded PEM public key the bearer
		// credentials are verified against.
		PublicKey string `env:"PUBLIC_KEY,notEmpty"`
	}
)
