package configs

import (
	"fmt"
	"strings"

	"printer-report/internal/shared/validators"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "PRINTREPORT"

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"time-period":    "period.time_period",
	"start-date":     "period.start_date",
	"end-date":       "period.end_date",
	"print-server":   "eventlog.print_servers",
	"ignore-printer": "report.ignore_printers",
	"mail-to":        "mail.to",
	"details":        "report.details",
	"stdout":         "report.stdout",
	"raw":            "report.raw",
	"users":          "report.users",
	"groups":         "report.groups",
	"printers":       "report.printers",
	"mail-server":    "mail.server",
	"mail-from":      "mail.from",
	"log-level":      "log.level",
}

// negatedFlags maps --no-X switches to the flag they turn off.
var negatedFlags = map[string]string{
	"no-users":    "users",
	"no-groups":   "groups",
	"no-printers": "printers",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("period.end_date", "today")

	v.SetDefault("eventlog.print_servers", []string{"localhost"})
	v.SetDefault("eventlog.reader", "wevtutil")
	v.SetDefault("eventlog.wevtutil_path", "wevtutil")
	v.SetDefault("eventlog.channel", "System")
	v.SetDefault("eventlog.provider", "Print")
	v.SetDefault("eventlog.event_id", 10)

	v.SetDefault("report.users", true)
	v.SetDefault("report.groups", true)
	v.SetDefault("report.printers", true)

	v.SetDefault("mail.server", "localhost")
	v.SetDefault("mail.port", 25)
	v.SetDefault("mail.from", "Administrator")
	v.SetDefault("mail.html", true)

	v.SetDefault("directory.kind", "none")
	v.SetDefault("directory.ldap_user_filter", "(&(objectClass=user)(sAMAccountName=%s))")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}

// LoadConfig builds the run configuration from defaults, an optional YAML file, PRINTREPORT_* environment
// variables and command-line flags, in increasing order of precedence, and validates it.
// configPath may be empty; flags may be nil.
var LoadConfig = func(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for negated, target := range negatedFlags {
		f := flags.Lookup(negated)
		if f == nil || !f.Changed || f.Value.String() != "true" {
			continue
		}
		if err := flags.Set(target, "false"); err != nil {
			return fmt.Errorf("failed to apply --%s: %w", negated, err)
		}
	}

	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "mail.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Mail.Port" -> "mail.port")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	var msg string
	switch tag {
	case "required", "required_if":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	case validators.TagMailAddress:
		msg = fmt.Sprintf("%s (invalid address %q)", field, e.Value())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
