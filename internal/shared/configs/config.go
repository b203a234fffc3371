package configs

// Config holds all configuration for one report run. It is built once at startup and never mutated.
type Config struct {
	Period    PeriodConfig    `mapstructure:"period"`
	EventLog  EventLogConfig  `mapstructure:"eventlog" validate:"required"`
	Report    ReportConfig    `mapstructure:"report"`
	Mail      MailConfig      `mapstructure:"mail" validate:"required"`
	Directory DirectoryConfig `mapstructure:"directory" validate:"required"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// PeriodConfig holds the requested reporting window. All values are raw operator input; they are
// interpreted by the periods package.
type PeriodConfig struct {
	TimePeriod string `mapstructure:"time_period"` // YYYY[-MM[-DD]] or "today"
	StartDate  string `mapstructure:"start_date"`  // ignored when TimePeriod is set
	EndDate    string `mapstructure:"end_date"`    // only read together with StartDate
}

// EventLogConfig selects where print events are read from.
type EventLogConfig struct {
	PrintServers []string `mapstructure:"print_servers" validate:"required,min=1,dive,required"`
	Reader       string   `mapstructure:"reader" validate:"required,oneof=wevtutil export"`
	ExportDir    string   `mapstructure:"export_dir" validate:"required_if=Reader export"`
	WevtutilPath string   `mapstructure:"wevtutil_path" validate:"required_if=Reader wevtutil"`
	Channel      string   `mapstructure:"channel" validate:"required"`
	Provider     string   `mapstructure:"provider" validate:"required"`
	EventID      uint32   `mapstructure:"event_id" validate:"required"`
}

// ReportConfig holds report content toggles.
type ReportConfig struct {
	IgnorePrinters []string `mapstructure:"ignore_printers"`
	Details        bool     `mapstructure:"details"`
	Stdout         bool     `mapstructure:"stdout"`
	Raw            bool     `mapstructure:"raw"`
	Users          bool     `mapstructure:"users"`
	Groups         bool     `mapstructure:"groups"`
	Printers       bool     `mapstructure:"printers"`
}

// MailConfig holds SMTP delivery settings.
type MailConfig struct {
	To       []string `mapstructure:"to" validate:"dive,mailaddr"`
	Server   string   `mapstructure:"server" validate:"required"`
	Port     int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	From     string   `mapstructure:"from" validate:"mailaddr"`
	Username string   `mapstructure:"username"`
	Password string   `mapstructure:"password"`
	HTML     bool     `mapstructure:"html"`
}

// DirectoryConfig selects how user names are resolved to group names.
type DirectoryConfig struct {
	Kind             string `mapstructure:"kind" validate:"required,oneof=none file ldap"`
	File             string `mapstructure:"file" validate:"required_if=Kind file"`
	LDAPURL          string `mapstructure:"ldap_url" validate:"required_if=Kind ldap"`
	LDAPBindDN       string `mapstructure:"ldap_bind_dn"`
	LDAPBindPassword string `mapstructure:"ldap_bind_password"`
	LDAPBaseDN       string `mapstructure:"ldap_base_dn" validate:"required_if=Kind ldap"`
	LDAPUserFilter   string `mapstructure:"ldap_user_filter"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=json console"`
}

// MetricsConfig holds run-metrics export configuration.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// PrintToStdout reports whether the report goes to standard output: always when asked, and whenever
// there is nobody to mail it to.
func (c *Config) PrintToStdout() bool {
	return c.Report.Stdout || len(c.Mail.To) == 0
}

// SendMail reports whether the report is mailed.
func (c *Config) SendMail() bool {
	return len(c.Mail.To) > 0
}
