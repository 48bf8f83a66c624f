package config

// Config contains all application settings
type Config struct {
	Server   string `mapstructure:"server" yaml:"server"`
	Password string `mapstructure:"password" yaml:"password"`
	Archive  string `mapstructure:"oar" yaml:"oar"`
	Region   string `mapstructure:"region" yaml:"region"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// Audit trail for disruptive commands, disabled when NATSServerURL is empty
	NATSServerURL string `mapstructure:"nats_url" yaml:"nats_url"`
	AuditSubject  string `mapstructure:"audit_subject" yaml:"audit_subject"`

	// Mock grid server
	MockGridListen  string   `mapstructure:"mockgrid_listen" yaml:"mockgrid_listen"`
	MockGridRegions []string `mapstructure:"mockgrid_regions" yaml:"mockgrid_regions"`

	// Version
	BuildVersion string `yaml:"-"`
	BuildHash    string `yaml:"-"`
	BuildTime    string `yaml:"-"`
}

// ValidateStatus checks the inputs of the read-only status tools.
func (c *Config) ValidateStatus() error {
	return requireFields(map[string]string{"server": c.Server})
}

// ValidateLoadArchive checks the inputs of the archive load command.
func (c *Config) ValidateLoadArchive() error {
	return requireFields(map[string]string{
		"server":   c.Server,
		"password": c.Password,
		"oar":      c.Archive,
		"region":   c.Region,
	})
}

// ValidateShutdown checks the inputs of the shutdown command.
func (c *Config) ValidateShutdown() error {
	return requireFields(map[string]string{
		"server":   c.Server,
		"password": c.Password,
	})
}

// ValidateMockGrid checks the inputs of the mock grid server.
func (c *Config) ValidateMockGrid() error {
	return requireFields(map[string]string{
		"password":        c.Password,
		"mockgrid_listen": c.MockGridListen,
	})
}

// requireFields reports the first empty field in a stable order.
func requireFields(fields map[string]string) error {
	for _, name := range fieldOrder {
		if v, ok := fields[name]; ok && v == "" {
			return NewConfigError(name)
		}
	}
	return nil
}

var fieldOrder = []string{"server", "password", "oar", "region", "mockgrid_listen"}
