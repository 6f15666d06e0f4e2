package sanitizer

// Config describes the default engine through environment variables.
// Load it with pkg/config.
type Config struct {
	// Policy is the markup policy name: strict or ugc.
	Policy string `env:"SANITIZER_POLICY" envDefault:"strict"`

	// Trim removes surrounding whitespace after cleaning.
	Trim bool `env:"SANITIZER_TRIM" envDefault:"true"`

	// MaxLength limits the cleaned value in runes; 0 disables the limit.
	MaxLength int `env:"SANITIZER_MAX_LENGTH" envDefault:"0"`

	// Normalize converts input to Unicode NFC before cleaning.
	Normalize bool `env:"SANITIZER_NORMALIZE" envDefault:"false"`
}

// NewFromConfig builds an Engine from cfg.
func NewFromConfig(cfg Config) (*Engine, error) {
	policy, err := ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}

	opts := []Option{WithTransforms(RemoveNullBytes, RemoveControlSequences)}
	if cfg.Normalize {
		opts = append(opts, WithNormalization())
	}
	if cfg.Trim {
		opts = append(opts, WithTransforms(Trim))
	}
	if cfg.MaxLength > 0 {
		limit := cfg.MaxLength
		opts = append(opts, WithTransforms(func(s string) string { return LimitLength(s, limit) }))
	}
	return New(policy, opts...)
}
