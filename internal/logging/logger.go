package logging

import "go.uber.org/zap"

// New builds the application logger: production encoding when APP_ENV is
// "production", human-readable development output otherwise.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
