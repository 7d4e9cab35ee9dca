package main

import (
	"encoding/hex"
	"fmt"

	"github.com/BurntSushi/toml"

	"sshkit/internal/errors"
)

// scenario is the TOML schema for a replay run: handler chains in
// registration order, then the packet stream to route through them.
type scenario struct {
	Handlers []handlerConfig `toml:"handler"`
	Packets  []packetConfig  `toml:"packet"`
}

// handlerConfig describes one callback chain entry.
type handlerConfig struct {
	Name    string `toml:"name"`
	Start   int    `toml:"start"`
	Count   int    `toml:"count"`
	Consume []int  `toml:"consume"` // types this chain consumes; others are declined
}

// packetConfig is one decoded packet in the replay stream.
type packetConfig struct {
	Type    int    `toml:"type"`
	Payload string `toml:"payload"` // hex-encoded, optional
}

// payloadBytes decodes the hex payload; validation has already
// guaranteed it parses.
func (p packetConfig) payloadBytes() []byte {
	data, _ := hex.DecodeString(p.Payload)
	return data
}

// loadScenario reads and validates a scenario file.
func loadScenario(path string) (*scenario, error) {
	var sc scenario
	if _, err := toml.DecodeFile(path, &sc); err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *scenario) validate() error {
	if len(sc.Packets) == 0 {
		return &errors.ConfigError{
			Field:   "packet",
			Message: "no packets defined",
			Hint:    "add at least one [[packet]] block",
		}
	}
	for i, h := range sc.Handlers {
		field := fmt.Sprintf("handler[%d]", i)
		if h.Name == "" {
			return &errors.ConfigError{Field: field + ".name", Message: "handler name is required"}
		}
		if h.Start < 0 || h.Start > 255 {
			return &errors.ConfigError{
				Field:   field + ".start",
				Value:   h.Start,
				Message: "must fit in one byte",
				Hint:    "message types range from 0 to 255",
			}
		}
		if h.Count < 0 {
			return &errors.ConfigError{Field: field + ".count", Value: h.Count, Message: "must not be negative"}
		}
		if h.Start+h.Count > 256 {
			return &errors.ConfigError{
				Field:   field + ".count",
				Value:   h.Count,
				Message: "range wraps past message type 255",
			}
		}
		for _, c := range h.Consume {
			if c < h.Start || c >= h.Start+h.Count {
				return &errors.ConfigError{
					Field:   field + ".consume",
					Value:   c,
					Message: "consumed type outside the chain's range",
				}
			}
		}
	}
	for i, p := range sc.Packets {
		field := fmt.Sprintf("packet[%d]", i)
		if p.Type < 0 || p.Type > 255 {
			return &errors.ConfigError{
				Field:   field + ".type",
				Value:   p.Type,
				Message: "must fit in one byte",
				Hint:    "message types range from 0 to 255",
			}
		}
		if _, err := hex.DecodeString(p.Payload); err != nil {
			return &errors.ConfigError{
				Field:   field + ".payload",
				Value:   p.Payload,
				Message: "not valid hex",
			}
		}
	}
	return nil
}
