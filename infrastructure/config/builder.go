package config

import (
	"io"

	domainconfig "github.com/felixgeelhaar/pdftool/domain/config"
	"github.com/felixgeelhaar/pdftool/domain/pack"
	"github.com/felixgeelhaar/pdftool/infrastructure/logging"
	"github.com/felixgeelhaar/pdftool/infrastructure/pdfreader"
	"github.com/felixgeelhaar/pdftool/pack/pdf"
)

// Builder turns configuration into runtime components.
type Builder struct {
	config *domainconfig.Config
}

// NewBuilder creates a new configuration builder.
func NewBuilder(config *domainconfig.Config) *Builder {
	return &Builder{config: config}
}

// LoggingConfig returns logger settings writing to output.
func (b *Builder) LoggingConfig(output io.Writer) logging.Config {
	return logging.Config{
		Level:  b.config.Logging.Level,
		Format: b.config.Logging.Format,
		Output: output,
	}
}

// PackConfig returns the pdf pack settings backed by the library reader.
func (b *Builder) PackConfig() pdf.PackConfig {
	return pdf.PackConfig{
		Opener:          pdfreader.NewOpener(),
		DefaultMaxPages: b.config.PDF.DefaultMaxPages,
		RootDir:         b.config.PDF.RootDir,
	}
}

// BuildPack creates the pdf tool pack.
func (b *Builder) BuildPack() (*pack.Pack, error) {
	return pdf.New(b.PackConfig())
}
