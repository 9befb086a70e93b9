package config

const (
	defaultDataDir         = "~/.local/share/redline"
	defaultLogDir          = "~/.local/share/redline/logs"
	defaultReportDir       = "~/.local/share/redline/reports"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultLLMBaseURL      = "https://openrouter.ai/api/v1/chat/completions"
	defaultLLMModel        = "anthropic/claude-sonnet-4"
	defaultLLMReferer      = "https://github.com/redline-tex/redline"
	defaultLLMTitle        = "Redline Section Reviser"
	defaultLLMTimeout      = 120
	defaultBackupRetention = 20
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			ReportDir: defaultReportDir,
		},
		LLM: LLM{
			BaseURL:        defaultLLMBaseURL,
			Model:          defaultLLMModel,
			Referer:        defaultLLMReferer,
			Title:          defaultLLMTitle,
			TimeoutSeconds: defaultLLMTimeout,
			Temperature:    0.3,
		},
		Revise: Revise{
			BackupRetention: defaultBackupRetention,
			OpenReport:      true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
