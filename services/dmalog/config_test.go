package dmalog

import (
	"testing"

	"uartlog-go/errcode"
)

func TestConfigDefaults(t *testing.T) {
	var c Config
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if c.BufferSize != DefaultBufferSize {
		t.Fatalf("BufferSize = %d, want %d", c.BufferSize, DefaultBufferSize)
	}
	if c.MaxRecord != DefaultMaxRecord {
		t.Fatalf("MaxRecord = %d, want %d", c.MaxRecord, DefaultMaxRecord)
	}
	if c.Ticks == nil || c.Lock == nil {
		t.Fatal("Ticks/Lock not defaulted")
	}
}

func TestConfigRejectsTinyBuffer(t *testing.T) {
	c := Config{BufferSize: 1}
	if err := c.Validate(); err != errcode.InvalidParams {
		t.Fatalf("Validate = %v, want InvalidParams", err)
	}
}

func TestConfigClampsMaxRecord(t *testing.T) {
	type C struct {
		size, rec, want int
	}
	for _, c := range []C{
		{4096, 4, minMaxRecord},
		{4096, 9999, maxMaxRecord},
		{16, 128, 15}, // capped to usable capacity
	} {
		cfg := Config{BufferSize: c.size, MaxRecord: c.rec}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate(%+v): %v", c, err)
		}
		if cfg.MaxRecord != c.want {
			t.Fatalf("MaxRecord(%d,%d) = %d, want %d", c.size, c.rec, cfg.MaxRecord, c.want)
		}
	}
}
