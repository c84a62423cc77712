package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort    string
	MetricsPort    string
	Environment    string
	MongoDBConfig  MongoDBConfig
	JWTSecret      string
	SMTPConfig     SMTPConfig
	MidtransConfig MidtransConfig
	TwilioConfig   TwilioConfig
	TracingConfig  TracingConfig
	AssetDir       string
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

type MidtransConfig struct {
	ServerKey string
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		MidtransConfig: MidtransConfig{
			ServerKey: os.Getenv("MIDTRANS_SERVER_KEY"),
		},
		TwilioConfig: TwilioConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			From:       os.Getenv("TWILIO_FROM"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		AssetDir: os.Getenv("ASSET_DIR"),
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}
	conf.SMTPConfig.Port = smtpPort

	if conf.AssetDir == "" {
		conf.AssetDir = "asset"
	}

	return &conf
}
