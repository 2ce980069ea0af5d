package session

import (
	"github.com/go-playground/validator/v10"

	"github.com/AntWinner-y-y/PDF-Master/pkg/logger"
)

// Config carries the tunable settings of a session.
type Config struct {
	ZoomMin  float64 `validate:"gt=0"`
	ZoomMax  float64 `validate:"gtfield=ZoomMin"`
	ZoomStep float64 `validate:"gt=1"`

	ThumbnailMinWidth int `validate:"min=1"`
	ThumbnailMaxWidth int `validate:"gtefield=ThumbnailMinWidth"`
	ThumbnailWidth    int `validate:"min=1"`

	MaxParallelRenders int `validate:"min=1,max=16"`

	Logger logger.LogFunc
}

// NewDefaultConfig returns the settings the desktop application shipped with.
func NewDefaultConfig() *Config {
	return &Config{
		ZoomMin:            0.1,
		ZoomMax:            5.0,
		ZoomStep:           1.2,
		ThumbnailMinWidth:  100,
		ThumbnailMaxWidth:  300,
		ThumbnailWidth:     100,
		MaxParallelRenders: 4,
	}
}

// Validate checks the config against its constraints.
func (cfg *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(cfg)
}
