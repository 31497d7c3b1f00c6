package reflow

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tsawler/reflow/layout"
	"github.com/tsawler/reflow/logger"
)

// Config controls the multi-page [Processor]. The zero value is not
// usable; start from [NewDefaultConfig].
type Config struct {
	// MaxConcurrentDocs bounds how many documents may be reconstructed
	// at once across all ReconstructDocument calls on this processor
	MaxConcurrentDocs int `validate:"min=1,max=10"`

	// MaxWorkersPerDoc bounds the per-document page worker pool
	MaxWorkersPerDoc int `validate:"min=1,max=10"`

	// WorkerTimeout caps the time spent on a single page attempt
	WorkerTimeout time.Duration `validate:"required"`

	// MaxRetries is how many times a cancelled page attempt is retried
	MaxRetries int `validate:"min=0,max=3"`

	// MaxTotalParagraphs truncates the in-order output after this many
	// paragraphs across all pages; 0 means unlimited
	MaxTotalParagraphs int `validate:"min=0"`

	// Grouper holds the reconstruction tolerances for every page
	Grouper layout.GrouperConfig

	// Logger receives debug and error messages; nil leaves logging off
	Logger logger.LogFunc
}

// NewDefaultConfig returns a config with the calibrated defaults
func NewDefaultConfig() *Config {
	return &Config{
		MaxConcurrentDocs:  5,
		MaxWorkersPerDoc:   4,
		WorkerTimeout:      5 * time.Second,
		MaxRetries:         1,
		MaxTotalParagraphs: 0,
		Grouper:            layout.DefaultGrouperConfig(),
	}
}

// Validate checks the config against its constraints
func (cfg *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(cfg)
}
