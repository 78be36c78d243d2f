package stream

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeConfig(t *testing.T) {
	yaml := `
mqtt:
  url: tcp://broker:1883
  username: cube
  topics:
    stream: cube/frames
display:
  tps: 30
api:
  listen: ":3000"
`
	c, err := DecodeConfig(strings.NewReader(yaml))
	if err != nil {
		t.Fatal(err)
	}

	if c.Mqtt.URL != "tcp://broker:1883" || c.Mqtt.Username != "cube" {
		t.Errorf("unexpected mqtt section %+v", c.Mqtt)
	}
	if c.Mqtt.Topics.Stream != "cube/frames" {
		t.Errorf("stream topic = %q", c.Mqtt.Topics.Stream)
	}
	if c.Mqtt.Topics.Control != "home/cube/control" {
		t.Errorf("expected default control topic, got %q", c.Mqtt.Topics.Control)
	}
	if c.Display.TPS != 30 || c.Display.Width != 480 {
		t.Errorf("unexpected display section %+v", c.Display)
	}
	if c.Api.Listen != ":3000" {
		t.Errorf("listen = %q", c.Api.Listen)
	}
}

func TestDecodeEmptyConfig(t *testing.T) {
	c, err := DecodeConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if c != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", c)
	}
}

func TestDecodeInvalidConfig(t *testing.T) {
	tests := []string{
		"display:\n  tps: 0\n",
		"display:\n  width: -1\n",
		"mqtt:\n  url: tcp://x:1883\n  topics:\n    stream: \"\"\n",
		"display: [",
	}

	for _, in := range tests {
		if _, err := DecodeConfig(strings.NewReader(in)); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()

	c, err := ReadConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil || c != DefaultConfig() {
		t.Errorf("expected defaults for missing file, got %+v, %v", c, err)
	}

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("display:\n  tps: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = ReadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Display.TPS != 120 {
		t.Errorf("tps = %d, want 120", c.Display.TPS)
	}
}
