package config

import (
	"fmt"
	"github.com/caarlos0/env/v11"
)

// ParseEnv - Loads configuration from environment variables into target, honoring env and envDefault struct tags.
//   - target is a pointer to a struct with env tags
//
// It returns:
//   - err is a wrapped env parsing error or nil
func ParseEnv(target any) (err error) {
	if err = env.Parse(target); err != nil {
		err = fmt.Errorf("parse env: %w", err)
	}

	return
}
