package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"3000"`
		Host     string `envconfig:"HOST"      default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"2"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"     default:"halachi"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"   default:"Accept,Content-Type,X-Admin-Password"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"   default:"GET,POST,PUT,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"   default:"*"`
			Enable           bool     `envconfig:"ENABLE"            default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"   default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"         default:"false"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"10"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		Admin struct {
			Secrets    []string `envconfig:"SECRETS"     default:"halachi2024,admin123"`
			Header     string   `envconfig:"HEADER"      default:"X-Admin-Password"`
			QueryParam string   `envconfig:"QUERY_PARAM" default:"admin_password"`
		} `envconfig:"ADMIN"`
	} `envconfig:"APP"`

	Storage struct {
		DataFile       string `envconfig:"DATA_FILE"        default:"data/database.json"`
		BookingsDir    string `envconfig:"BOOKINGS_DIR"     default:"data/bookings"`
		PublicDir      string `envconfig:"PUBLIC_DIR"       default:"public"`
		Driver         string `envconfig:"DRIVER"           default:"local"`
		UploadDir      string `envconfig:"UPLOAD_DIR"       default:"public/images/uploads"`
		PublicPath     string `envconfig:"PUBLIC_PATH"      default:"/images/uploads"`
		MaxUploadMB    int    `envconfig:"MAX_UPLOAD_MB"    default:"5"`
		MaxUploadFiles int    `envconfig:"MAX_UPLOAD_FILES" default:"5"`
	} `envconfig:"STORAGE"`

	Log struct {
		File       string `envconfig:"FILE"`
		MaxSizeMB  int    `envconfig:"MAX_SIZE_MB"  default:"10"`
		MaxBackups int    `envconfig:"MAX_BACKUPS"  default:"7"`
		MaxAgeDays int    `envconfig:"MAX_AGE_DAYS" default:"28"`
		Compress   bool   `envconfig:"COMPRESS"     default:"true"`
	} `envconfig:"LOG"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST" default:"localhost"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"   default:"0"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			Region          string `envconfig:"REGION" default:"auto"`
		} `envconfig:"S3"`
		Kafka struct {
			Brokers  []string `envconfig:"BROKERS"`
			Topic    string   `envconfig:"TOPIC"    default:"halachi.bookings"`
			Username string   `envconfig:"USERNAME"`
			Password string   `envconfig:"PASSWORD"`
		} `envconfig:"KAFKA"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			return
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("processing environment variables: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

// MaxUploadBytes is the per-file ceiling for image uploads.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Storage.MaxUploadMB) << 20
}
