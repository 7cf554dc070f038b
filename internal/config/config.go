package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultGames       = 100
	DefaultConcurrency = 4
	DefaultMaxPlies    = 200
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(playersTogether, Config{})
	return v
}

// playersTogether rejects a config naming only one of the two player kinds
func playersTogether(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	switch {
	case c.White != "" && c.Black == "":
		sl.ReportError(c.Black, "Black", "Black", "required_with", "White")
	case c.Black != "" && c.White == "":
		sl.ReportError(c.White, "White", "White", "required_with", "Black")
	}
}

// Config holds every user-tunable setting. Flags, environment variables and
// the optional .env file all resolve into this struct.
type Config struct {
	White    string `validate:"omitempty,oneof=h c human computer"`
	Black    string `validate:"omitempty,oneof=h c human computer"`
	Position string `validate:"omitempty,max=100"`
	Theme    string `validate:"required,oneof=off brown green gray"`
	Verbose  bool
	Debug    bool
	Seed     int64

	// Arena settings
	Games       int `validate:"min=1,max=100000"`
	Concurrency int `validate:"min=1,max=64"`
	MaxPlies    int `validate:"min=1,max=10000"`
}

func Default() Config {
	return Config{
		Theme:       "off",
		Games:       DefaultGames,
		Concurrency: DefaultConcurrency,
		MaxPlies:    DefaultMaxPlies,
	}
}

// LoadEnv loads variables from a .env style file into the process
// environment. A missing file is not an error and existing variables win.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration and reports every failing field
func (c *Config) Validate() error {
	errs := validate.Struct(c)
	if errs == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(errs, &verrs) {
		return errs
	}

	var details strings.Builder
	for _, err := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch err.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", err.Field()))
		case "required_with":
			details.WriteString(fmt.Sprintf("%s is required when %s is set", err.Field(), err.Param()))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", err.Field(), err.Param()))
		case "min":
			if err.Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must be at least %s", err.Field(), err.Param()))
			}
		case "max":
			if err.Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must be at most %s", err.Field(), err.Param()))
			}
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", err.Field(), err.Tag()))
		}
	}

	return fmt.Errorf("invalid configuration: %s", details.String())
}
