package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `toml:"Enabled" mapstructure:"Enabled"`
	UseConsoleWriter bool `toml:"UseConsoleWriter" mapstructure:"UseConsoleWriter"`
}

// LogFile implements a file based logger.
type LogFile struct {
	Enabled bool   `toml:"Enabled" mapstructure:"Enabled"`
	Path    string `toml:"Path" mapstructure:"Path"`

	AccessLog        string `toml:"Access" mapstructure:"Access"`
	AccessMaxSize    int    `toml:"AccessMaxSize" mapstructure:"AccessMaxSize"`
	AccessMaxBackups int    `toml:"AccessMaxBackups" mapstructure:"AccessMaxBackups"`
	AccessMaxAge     int    `toml:"AccessMaxAge" mapstructure:"AccessMaxAge"`

	ErrorLog        string `toml:"Error" mapstructure:"Error"`
	ErrorMaxSize    int    `toml:"ErrorMaxSize" mapstructure:"ErrorMaxSize"`
	ErrorMaxBackups int    `toml:"ErrorMaxBackups" mapstructure:"ErrorMaxBackups"`
	ErrorMaxAge     int    `toml:"ErrorMaxAge" mapstructure:"ErrorMaxAge"`

	InfoLog        string `toml:"Info" mapstructure:"Info"`
	InfoMaxSize    int    `toml:"InfoMaxSize" mapstructure:"InfoMaxSize"`
	InfoMaxBackups int    `toml:"InfoMaxBackups" mapstructure:"InfoMaxBackups"`
	InfoMaxAge     int    `toml:"InfoMaxAge" mapstructure:"InfoMaxAge"`

	TraceLog        string `toml:"Trace" mapstructure:"Trace"`
	TraceMaxSize    int    `toml:"TraceMaxSize" mapstructure:"TraceMaxSize"`
	TraceMaxBackups int    `toml:"TraceMaxBackups" mapstructure:"TraceMaxBackups"`
	TraceMaxAge     int    `toml:"TraceMaxAge" mapstructure:"TraceMaxAge"`

	WarnLog        string `toml:"Warn" mapstructure:"Warn"`
	WarnMaxSize    int    `toml:"WarnMaxSize" mapstructure:"WarnMaxSize"`
	WarnMaxBackups int    `toml:"WarnMaxBackups" mapstructure:"WarnMaxBackups"`
	WarnMaxAge     int    `toml:"WarnMaxAge" mapstructure:"WarnMaxAge"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string // trace, debug, info, warn, error.

	// EnableAccessLogToConsole if true the webserver access log is written to stdout.
	// Does not overrule flag Console.Enabled!
	// If Console.Enabled is false, still no access log output to the console will be shown.
	EnableAccessLogToConsole bool
	ReportCaller             bool
	DisableCheckAlive        bool // do not log /checkalive calls

	// SlowQuery marks SQL statements slower than this many milliseconds as warnings.
	SlowQuery int

	AppName     string
	ServiceName string

	// Console used mainly for docker and dev.
	Console Console

	File LogFile `toml:"File" mapstructure:"File"`
}
