package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Seats SeatConfig
}

type AppConfig struct {
	Name    string `validate:"required"`
	Port    string `validate:"omitempty,numeric"` // status API, empty disables it
	Debug   bool
	LogPath string
}

type SeatConfig struct {
	File            string `validate:"required"`
	Rows            int    `validate:"gt=0"`
	Cols            int    `validate:"gt=0,lte=26"`
	Aisle           int    `validate:"gte=0,ltefield=Cols"` // first column after the aisle, 0 for none
	AvailableMarker string `validate:"len=1,printascii,nefield=TakenMarker"`
	TakenMarker     string `validate:"len=1,printascii"`
}

// LoadConfig reads envFile when it exists, then lets environment variables
// override it. A missing envFile is not an error.
func LoadConfig(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "flight-seating")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("STATUS_PORT", "")
	v.SetDefault("SEATS_FILE", "seats.txt")
	v.SetDefault("SEAT_ROWS", 10)
	v.SetDefault("SEAT_COLS", 4)
	v.SetDefault("MARKER_AVAILABLE", ".")
	v.SetDefault("MARKER_TAKEN", "X")

	if _, err := os.Stat(envFile); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", envFile, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat config %s: %w", envFile, err)
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("STATUS_PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Seats: SeatConfig{
			File:            v.GetString("SEATS_FILE"),
			Rows:            v.GetInt("SEAT_ROWS"),
			Cols:            v.GetInt("SEAT_COLS"),
			AvailableMarker: v.GetString("MARKER_AVAILABLE"),
			TakenMarker:     v.GetString("MARKER_TAKEN"),
		},
	}

	// Aisle sits in the middle unless configured
	config.Seats.Aisle = config.Seats.Cols / 2
	if v.IsSet("SEAT_AISLE") {
		config.Seats.Aisle = v.GetInt("SEAT_AISLE")
	}

	if errs := ValidateStruct(config); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", FormatValidationErrors(errs))
	}

	return config, nil
}
