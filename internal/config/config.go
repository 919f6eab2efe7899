package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"docflow/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	AWS          AWSConfig
	Storage      StorageConfig
	Table        TableConfig
	Notify       NotifyConfig
	Queue        QueueConfig
	Thresholds   ThresholdsConfig
	Orchestrator OrchestratorConfig
	Intake       IntakeConfig
	Admin        AdminConfig
	Email        EmailConfig
}

// AWSConfig holds shared AWS client settings.
type AWSConfig struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// StorageConfig holds object storage settings for extracted text and
// inference output.
type StorageConfig struct {
	Bucket string `mapstructure:"bucket"`
}

// TableConfig holds the document table settings.
type TableConfig struct {
	Name string `mapstructure:"name"`
}

// NotifyConfig holds the topics and role used for job notifications and
// extraction results.
type NotifyConfig struct {
	JobTopicARN    string `mapstructure:"job_topic_arn"`
	JobRoleARN     string `mapstructure:"job_role_arn"`
	ResultTopicARN string `mapstructure:"result_topic_arn"`
	DataAccessRole string `mapstructure:"data_access_role"`
}

// QueueConfig holds the event queue settings.
type QueueConfig struct {
	TriggerURL    string `mapstructure:"trigger_url"`
	CompletionURL string `mapstructure:"completion_url"`
	WaitSecs      int    `mapstructure:"wait_secs"`
	Concurrency   int    `mapstructure:"concurrency"`
}

// ThresholdsConfig holds the per-category minimum confidence scores applied
// to NLP inference output.
type ThresholdsConfig struct {
	Entity    float64 `mapstructure:"entity"`
	Concept   float64 `mapstructure:"concept"`
	Attribute float64 `mapstructure:"attribute"`
	Trait     float64 `mapstructure:"trait"`
}

// OrchestratorConfig holds the ontology state machine settings.
type OrchestratorConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Timeout      time.Duration `mapstructure:"timeout"`
	SubmitLimit  int           `mapstructure:"submit_limit"`
}

// IntakeConfig holds intake routing settings. PDF documents are routed by
// key prefix; anything unmatched falls through to the default pipeline.
type IntakeConfig struct {
	PleadingPrefix string        `mapstructure:"pleading_prefix"`
	ExpensePrefix  string        `mapstructure:"expense_prefix"`
	SubmitTimeout  time.Duration `mapstructure:"submit_timeout"`
	SaveTimeout    time.Duration `mapstructure:"save_timeout"`
}

// AdminConfig holds the admin HTTP endpoint settings.
type AdminConfig struct {
	Port string `mapstructure:"port"`
}

// EmailConfig holds operator email settings for terminal-status mail.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	ToAddress   string `mapstructure:"to_address"`
}

// Load reads configuration from environment variables with the DOCFLOW_
// prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AWS defaults
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.endpoint", "")

	// Storage / table defaults
	v.SetDefault("storage.bucket", "")
	v.SetDefault("table.name", "")

	// Notification defaults
	v.SetDefault("notify.job_topic_arn", "")
	v.SetDefault("notify.job_role_arn", "")
	v.SetDefault("notify.result_topic_arn", "")
	v.SetDefault("notify.data_access_role", "")

	// Queue defaults
	v.SetDefault("queue.trigger_url", "")
	v.SetDefault("queue.completion_url", "")
	v.SetDefault("queue.wait_secs", 20)
	v.SetDefault("queue.concurrency", 5)

	// Confidence thresholds
	v.SetDefault("thresholds.entity", 0.5)
	v.SetDefault("thresholds.concept", 0.5)
	v.SetDefault("thresholds.attribute", 0.5)
	v.SetDefault("thresholds.trait", 0.5)

	// Orchestrator defaults
	v.SetDefault("orchestrator.poll_interval", "30s")
	v.SetDefault("orchestrator.timeout", "30m")
	v.SetDefault("orchestrator.submit_limit", 10000)

	// Intake defaults
	v.SetDefault("intake.pleading_prefix", "pleadings/")
	v.SetDefault("intake.expense_prefix", "expenses/")
	v.SetDefault("intake.submit_timeout", "30s")
	v.SetDefault("intake.save_timeout", "5m")

	// Admin defaults
	v.SetDefault("admin.port", ":8080")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@docflow.local")
	v.SetDefault("email.to_address", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"aws.region":                "DOCFLOW_AWS_REGION",
		"aws.endpoint":              "DOCFLOW_AWS_ENDPOINT",
		"aws.access_key":            "DOCFLOW_AWS_ACCESS_KEY",
		"aws.secret_key":            "DOCFLOW_AWS_SECRET_KEY",
		"storage.bucket":            "DOCFLOW_STORAGE_BUCKET",
		"table.name":                "DOCFLOW_TABLE_NAME",
		"notify.job_topic_arn":      "DOCFLOW_NOTIFY_JOB_TOPIC_ARN",
		"notify.job_role_arn":       "DOCFLOW_NOTIFY_JOB_ROLE_ARN",
		"notify.result_topic_arn":   "DOCFLOW_NOTIFY_RESULT_TOPIC_ARN",
		"notify.data_access_role":   "DOCFLOW_NOTIFY_DATA_ACCESS_ROLE",
		"queue.trigger_url":         "DOCFLOW_QUEUE_TRIGGER_URL",
		"queue.completion_url":      "DOCFLOW_QUEUE_COMPLETION_URL",
		"queue.wait_secs":           "DOCFLOW_QUEUE_WAIT_SECS",
		"queue.concurrency":         "DOCFLOW_QUEUE_CONCURRENCY",
		"thresholds.entity":         "DOCFLOW_THRESHOLDS_ENTITY",
		"thresholds.concept":        "DOCFLOW_THRESHOLDS_CONCEPT",
		"thresholds.attribute":      "DOCFLOW_THRESHOLDS_ATTRIBUTE",
		"thresholds.trait":          "DOCFLOW_THRESHOLDS_TRAIT",
		"orchestrator.poll_interval": "DOCFLOW_ORCHESTRATOR_POLL_INTERVAL",
		"orchestrator.timeout":       "DOCFLOW_ORCHESTRATOR_TIMEOUT",
		"orchestrator.submit_limit":  "DOCFLOW_ORCHESTRATOR_SUBMIT_LIMIT",
		"intake.pleading_prefix":     "DOCFLOW_INTAKE_PLEADING_PREFIX",
		"intake.expense_prefix":      "DOCFLOW_INTAKE_EXPENSE_PREFIX",
		"intake.submit_timeout":      "DOCFLOW_INTAKE_SUBMIT_TIMEOUT",
		"intake.save_timeout":        "DOCFLOW_INTAKE_SAVE_TIMEOUT",
		"admin.port":                 "DOCFLOW_ADMIN_PORT",
		"email.provider":             "DOCFLOW_EMAIL_PROVIDER",
		"email.region":               "DOCFLOW_EMAIL_REGION",
		"email.from_address":         "DOCFLOW_EMAIL_FROM_ADDRESS",
		"email.to_address":           "DOCFLOW_EMAIL_TO_ADDRESS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	cfg.AWS = AWSConfig{
		Region:    v.GetString("aws.region"),
		Endpoint:  v.GetString("aws.endpoint"),
		AccessKey: v.GetString("aws.access_key"),
		SecretKey: v.GetString("aws.secret_key"),
	}
	cfg.Storage = StorageConfig{
		Bucket: v.GetString("storage.bucket"),
	}
	cfg.Table = TableConfig{
		Name: v.GetString("table.name"),
	}
	cfg.Notify = NotifyConfig{
		JobTopicARN:    v.GetString("notify.job_topic_arn"),
		JobRoleARN:     v.GetString("notify.job_role_arn"),
		ResultTopicARN: v.GetString("notify.result_topic_arn"),
		DataAccessRole: v.GetString("notify.data_access_role"),
	}
	cfg.Queue = QueueConfig{
		TriggerURL:    v.GetString("queue.trigger_url"),
		CompletionURL: v.GetString("queue.completion_url"),
		WaitSecs:      v.GetInt("queue.wait_secs"),
		Concurrency:   v.GetInt("queue.concurrency"),
	}
	cfg.Thresholds = ThresholdsConfig{
		Entity:    v.GetFloat64("thresholds.entity"),
		Concept:   v.GetFloat64("thresholds.concept"),
		Attribute: v.GetFloat64("thresholds.attribute"),
		Trait:     v.GetFloat64("thresholds.trait"),
	}
	cfg.Orchestrator = OrchestratorConfig{
		PollInterval: v.GetDuration("orchestrator.poll_interval"),
		Timeout:      v.GetDuration("orchestrator.timeout"),
		SubmitLimit:  v.GetInt("orchestrator.submit_limit"),
	}
	cfg.Intake = IntakeConfig{
		PleadingPrefix: v.GetString("intake.pleading_prefix"),
		ExpensePrefix:  v.GetString("intake.expense_prefix"),
		SubmitTimeout:  v.GetDuration("intake.submit_timeout"),
		SaveTimeout:    v.GetDuration("intake.save_timeout"),
	}
	cfg.Admin = AdminConfig{
		Port: v.GetString("admin.port"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		ToAddress:   v.GetString("email.to_address"),
	}

	// A missing table or bucket is a configuration error: fatal, no retry.
	if cfg.Table.Name == "" {
		return nil, domain.ErrMissingTableName
	}
	if cfg.Storage.Bucket == "" {
		return nil, domain.ErrMissingBucket
	}

	return cfg, nil
}
