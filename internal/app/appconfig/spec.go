package appconfig

import (
	"time"

	"github.com/millbrook-logistics/dispatchd/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address the HTTP API would listen on.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9310"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout
	// for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// TrustedProxies is a list of proxies trusted to report a real IP via the
	// X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program spins up
	// debugging utilities and trace-level logging.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// infrastructure components connection instructions

	// PostgresDSN is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver for details on how to construct one.
	PostgresDSN string `required:"true" split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`

	// RedisURL is the URL of the Redis server. See
	// https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL on how to construct one.
	RedisURL string `required:"true" split_words:"true" default:"redis://127.0.0.1:6379/2"`

	// NatsURL is the URL of the NATS server used to fan out dock snapshot updates.
	NatsURL string `required:"true" split_words:"true" default:"nats://127.0.0.1:4222"`

	// SentryDSN is the DSN of the Sentry server. Leaving this empty disables Sentry.
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// AccessKey is the shared staff credential checked by /auth/login.
	AccessKey string `split_words:"true"`

	// AdminKey is the key used to authenticate the admin API.
	AdminKey string `split_words:"true"`

	// SessionTTL is how long an issued staff session token stays valid.
	SessionTTL time.Duration `split_words:"true" default:"12h"`

	// DockRefreshInterval is the fixed interval at which the dock worker
	// re-derives the door snapshot for the delivery date.
	DockRefreshInterval time.Duration `required:"true" split_words:"true" default:"30s"`

	// DockWorkerEnabled is a flag to indicate whether to run the dock refresh worker.
	DockWorkerEnabled bool `split_words:"true" default:"true"`

	// StorageTrailerNumber is the equipment number of the trailer kept at the
	// dock for non-route storage.
	StorageTrailerNumber string `split_words:"true" default:"1007"`

	// StorageTrailerDoor is the home door of the storage trailer.
	StorageTrailerDoor int `split_words:"true" default:"4"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
