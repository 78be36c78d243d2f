package stream

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

// Config of the cube application.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientId"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream   string `yaml:"stream"`
			Control  string `yaml:"control"`
			Position string `yaml:"position"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Display struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
		TPS    int `yaml:"tps"`
	} `yaml:"display"`
	Api struct {
		Listen string `yaml:"listen"`
	} `yaml:"api"`
}

// DefaultConfig returns the settings used when no config file is present.
// MQTT and the HTTP API are disabled until an address is configured.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.ClientID = "cube"
	c.Mqtt.Topics.Stream = "home/cube/stream"
	c.Mqtt.Topics.Control = "home/cube/control"
	c.Mqtt.Topics.Position = "home/cube/position"
	c.Display.Width = 480
	c.Display.Height = 800
	c.Display.TPS = 60
	return c
}

// ReadConfig reads YAML from path over the defaults. A missing file is not
// an error.
func ReadConfig(path string) (Config, error) {
	c := DefaultConfig()

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Config %s not found, using defaults", path)
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	c, err = DecodeConfig(f)
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// DecodeConfig decodes YAML from r over the defaults and validates it.
func DecodeConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, c.Validate()
}

// Validate checks the settings are usable.
func (c Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("invalid display size %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.TPS <= 0 {
		return fmt.Errorf("invalid display tps %d", c.Display.TPS)
	}
	if c.Mqtt.URL != "" && c.Mqtt.Topics.Stream == "" {
		return errors.New("mqtt.topics.stream is required when mqtt.url is set")
	}
	return nil
}
