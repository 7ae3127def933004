package config

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github/chapool/sign-oracle/internal/util"
)

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	BaseURL                        string
	EnableCORSMiddleware           bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableTrailingSlashMiddleware  bool
	EnableMetricsMiddleware        bool
	BodyLimit                      string
}

// CORS mirrors the policy of the public sign endpoint: any origin, POST only.
type CORS struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestBody     bool
	LogRequestHeader   bool
	LogRequestQuery    bool
	PrettyPrintConsole bool
}

type ManagementServer struct {
	Secret             string `json:"-"` // sensitive
	ReadinessTimeout   time.Duration
	LivenessTimeout    time.Duration
	ProbeWriteablePath string
}

type Wallet struct {
	// BIP39 master mnemonic, the only secret of the service
	Mnemonic string `json:"-"` // sensitive
}

type Paths struct {
	EnvFile string
}

type Server struct {
	Echo       EchoServer
	CORS       CORS
	Logger     LoggerServer
	Management ManagementServer
	Wallet     Wallet
	Paths      Paths
}

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	// An `.env.local` file in your project root can override the currently set ENV variables.
	//
	// We never automatically apply `.env.local` when running "go test" as these ENV variables
	// may be sensitive (e.g. secrets to external APIs) and applying them modifies the process
	// global "os.Env" state (it should be applied via t.SetEnv instead).
	//
	// If you need dotenv ENV variables available in a test, do that explicitly within that
	// test before executing DefaultServiceConfigFromEnv (or test.WithTestServer).
	if !util.RunningInTest() {
		DotEnvTryLoad(filepath.Join(util.GetProjectRootDir(), ".env.local"), util.SetEnv)
	}

	return Server{
		Echo: EchoServer{
			Debug:                          util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", "0.0.0.0:3030"),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			BaseURL:                        util.GetEnv("SERVER_ECHO_BASE_URL", "http://localhost:3030"),
			EnableCORSMiddleware:           util.GetEnvAsBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true),
			EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
			EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableTrailingSlashMiddleware:  util.GetEnvAsBool("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE", true),
			EnableMetricsMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_METRICS_MIDDLEWARE", true),
			BodyLimit:                      util.GetEnv("SERVER_ECHO_BODY_LIMIT", "1M"),
		},
		CORS: CORS{
			AllowOrigins: util.GetEnvAsStringArrTrimmed("SERVER_CORS_ALLOW_ORIGINS", []string{"*"}),
			AllowMethods: util.GetEnvAsStringArrTrimmed("SERVER_CORS_ALLOW_METHODS", []string{"POST", "OPTIONS"}),
			AllowHeaders: util.GetEnvAsStringArrTrimmed("SERVER_CORS_ALLOW_HEADERS", []string{
				"User-Agent",
				"Content-Type",
				"Sec-Fetch-Mode",
				"Referer",
				"Origin",
				"Access-Control-Request-Method",
				"Access-Control-Request-Headers",
			}),
		},
		Logger: LoggerServer{
			Level:              util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_LEVEL", zerolog.DebugLevel.String())),
			RequestLevel:       util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String())),
			LogRequestBody:     util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_BODY", false),
			LogRequestHeader:   util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_HEADER", false),
			LogRequestQuery:    util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_QUERY", false),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Management: ManagementServer{
			Secret:             util.GetMgmtSecret("SERVER_MANAGEMENT_SECRET"),
			ReadinessTimeout:   time.Second * time.Duration(util.GetEnvAsInt("SERVER_MANAGEMENT_READINESS_TIMEOUT_SEC", 4)),
			LivenessTimeout:    time.Second * time.Duration(util.GetEnvAsInt("SERVER_MANAGEMENT_LIVENESS_TIMEOUT_SEC", 9)),
			ProbeWriteablePath: util.GetEnv("SERVER_MANAGEMENT_PROBE_WRITEABLE_PATH", "/tmp"),
		},
		Wallet: Wallet{
			Mnemonic: util.GetEnv("SECRET", ""),
		},
		Paths: Paths{
			EnvFile: filepath.Join(util.GetProjectRootDir(), ".env.local"),
		},
	}
}
