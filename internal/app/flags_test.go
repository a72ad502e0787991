package app

import (
	"flag"
	"testing"
	"time"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("terrain", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-scale", "2", "-seed", "7", "-cycle", "3s", "-config", "w.yaml"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Scale != 2 || cfg.Seed != 7 || cfg.Cycle != 3*time.Second || cfg.WorldFile != "w.yaml" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.TPS != 30 || cfg.HUDWidth != 260 {
		t.Fatalf("untouched flags lost their defaults: %+v", cfg)
	}
}
