package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	AWS         AWSConfig
	JWT         JWTConfig
	Reservation ReservationConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type AWSConfig struct {
	Region    string
	Endpoint  string // non-empty for DynamoDB Local
	AccessKey string
	SecretKey string
	Tables    TableNames
}

type TableNames struct {
	Events          string
	DateLocks       string
	TableLocks      string
	Reservations    string
	FrequentClients string
	CRMProfiles     string
}

type JWTConfig struct {
	Secret string
}

type ReservationConfig struct {
	HoldTTLSeconds int64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("HOLD_TTL_SECONDS", 300)
	viper.SetDefault("TABLE_EVENTS", "events")
	viper.SetDefault("TABLE_DATE_LOCKS", "event_date_locks")
	viper.SetDefault("TABLE_TABLE_LOCKS", "table_locks")
	viper.SetDefault("TABLE_RESERVATIONS", "reservations")
	viper.SetDefault("TABLE_FREQUENT_CLIENTS", "frequent_clients")
	viper.SetDefault("TABLE_CRM_PROFILES", "crm_profiles")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		AWS: AWSConfig{
			Region:    viper.GetString("AWS_REGION"),
			Endpoint:  viper.GetString("DYNAMO_ENDPOINT"),
			AccessKey: viper.GetString("AWS_ACCESS_KEY_ID"),
			SecretKey: viper.GetString("AWS_SECRET_ACCESS_KEY"),
			Tables: TableNames{
				Events:          viper.GetString("TABLE_EVENTS"),
				DateLocks:       viper.GetString("TABLE_DATE_LOCKS"),
				TableLocks:      viper.GetString("TABLE_TABLE_LOCKS"),
				Reservations:    viper.GetString("TABLE_RESERVATIONS"),
				FrequentClients: viper.GetString("TABLE_FREQUENT_CLIENTS"),
				CRMProfiles:     viper.GetString("TABLE_CRM_PROFILES"),
			},
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Reservation: ReservationConfig{
			HoldTTLSeconds: viper.GetInt64("HOLD_TTL_SECONDS"),
		},
	}

	return config, nil
}
