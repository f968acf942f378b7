package cmd

import "fmt"

// Config carries all runtime settings, loaded from the environment.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	GeoAPIKey     string
	GeoBaseURL    string
	TravelBaseURL string

	SMTPHost     string
	SMTPPort     int
	SMTPFrom     string
	SMTPUser     string
	SMTPPassword string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
	TwilioBaseURL    string

	AIAPIKey  string
	AIModel   string
	AIBaseURL string

	// AuthorityContact receives emergency alerts.
	AuthorityContact string

	// PrepMarginMinutes bounds how much longer a nearby order's preparation
	// may run past the driver's current wait before it is skipped.
	PrepMarginMinutes int

	// AuditWritePolicy selects when tool audit rows are persisted relative
	// to the response: "sync" (default) or "async".
	AuditWritePolicy string
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
