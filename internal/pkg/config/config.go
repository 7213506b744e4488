package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bytedance/sonic"
)

const (
	BusSystem  = "system"
	BusSession = "session"
)

// Parameters collects template parameters from repeated -p flags. A value is
// either Key=Value or a JSON object whose members are merged in.
type Parameters map[string]any

func (p *Parameters) Set(value string) error {
	if *p == nil {
		*p = make(Parameters)
	}
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "{") {
		var params map[string]any
		if err := sonic.UnmarshalString(value, &params); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidParameters, err)
		}
		maps.Copy(*p, params)
		return nil
	}
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("%w: %q is not Key=Value", ErrInvalidParameters, value)
	}
	(*p)[key] = val
	return nil
}

func (p *Parameters) String() string {
	if p == nil {
		return ""
	}
	keys := slices.Sorted(maps.Keys(*p))
	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, (*p)[key]))
	}
	return strings.Join(pairs, ",")
}

type Config struct {
	Bus        string
	Address    string
	Parameters Parameters
	Verbose    bool
}

var C = new(Config)

var (
	ErrInvalidBus        = errors.New("bus must be system or session")
	ErrInvalidParameters = errors.New("invalid parameters")
)

// IsValid reports whether the configuration names a bus to connect to. An
// explicit address overrides the bus choice.
func (c *Config) IsValid() error {
	if c.Address != "" {
		return nil
	}
	if c.Bus != BusSystem && c.Bus != BusSession {
		return ErrInvalidBus
	}
	return nil
}
