// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package agm

import (
	"log/slog"
)

// Config is the filter configuration. It is fixed for a filter's lifetime.
type Config struct {
	// LumaScaling multiplies avg*avg to give the frame exponent. Any
	// finite value is accepted.
	LumaScaling float32 `yaml:"luma_scaling"`

	// Fade enables the studio-range fade ladder.
	Fade bool `yaml:"fade"`

	// Variant selects the kernel. See Variant.
	Variant Variant `yaml:"opt"`

	// Workers is the number of row bands processed in parallel. 1 runs on
	// the calling goroutine, 0 uses GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Logger overrides the package logger for this filter.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns the defaults: LumaScaling 10, fade on, automatic
// variant, one worker.
func DefaultConfig() Config {
	return Config{
		LumaScaling: 10,
		Fade:        true,
		Variant:     VariantAuto,
		Workers:     1,
	}
}

// Option modifies a Config.
type Option func(*Config)

// WithConfig replaces the whole configuration. Options after it still
// apply.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithLumaScaling sets the exponent multiplier.
func WithLumaScaling(s float32) Option {
	return func(c *Config) {
		c.LumaScaling = s
	}
}

// WithFade enables or disables the fade ladder.
func WithFade(fade bool) Option {
	return func(c *Config) {
		c.Fade = fade
	}
}

// WithVariant requests a kernel variant.
func WithVariant(v Variant) Option {
	return func(c *Config) {
		c.Variant = v
	}
}

// WithWorkers sets the number of parallel row bands. 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithLogger sets the logger used by this filter.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
