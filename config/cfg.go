package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	VideoConfig struct {
		FPS                   float64 `yaml:"fps" validate:"gt=0,lte=240"`
		Resolution            string  `yaml:"resolution" validate:"required"`
		Codec                 string  `yaml:"codec" validate:"required"`
		PixelFormat           string  `yaml:"pixel_format" validate:"required"`
		OutputNameTemplate    string  `yaml:"output_name_template"`
		FileNameTransliterate bool    `yaml:"file_name_transliterate"`
	}

	FramesConfig struct {
		Extensions    []string `yaml:"extensions" validate:"min=1,dive,required,startswith=."`
		VerifyContent bool     `yaml:"verify_content"`
		SortCase      SortCase `yaml:"sort_case" validate:"gte=0"`
		RasterizeSVG  bool     `yaml:"rasterize_svg"`
	}

	FFmpegConfig struct {
		Path      string   `yaml:"path" validate:"required"`
		LogLevel  string   `yaml:"loglevel" validate:"required,oneof=quiet error warning info"`
		ExtraArgs []string `yaml:"extra_args"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Video     VideoConfig    `yaml:"video"`
		Frames    FramesConfig   `yaml:"frames"`
		FFmpeg    FFmpegConfig   `yaml:"ffmpeg"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
