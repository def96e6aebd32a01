package newrelic

import (
	"log"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/kasozi/talentpay/internal/pkg/models"
)

// InitNewRelic initializes the New Relic agent. Returns nil when the
// agent is disabled; callers must tolerate a nil application.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: failed to initialize New Relic: %v", err)
		return nil
	}

	return app
}
