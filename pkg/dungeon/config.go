package dungeon

import (
	"crypto/sha256"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options tunes the generation pipeline. The zero value is not valid; use
// DefaultOptions and override individual fields, or load a Request from
// YAML.
type Options struct {
	// DoorChance is both the number of placement attempts per connector
	// bucket and the 1/DoorChance acceptance probability for each attempt.
	DoorChance int `yaml:"doorChance" json:"doorChance"`

	// MaxDoors bounds the per-bucket target door count drawn by
	// IntBetween(1, MaxDoors).
	MaxDoors int `yaml:"maxDoors" json:"maxDoors"`

	// RoomTries is the number of room-placement attempts; rejected
	// candidates still consume their fixed PRNG draw sequence.
	RoomTries int `yaml:"roomTries" json:"roomTries"`

	// RoomExtraSize biases room size draws upward.
	RoomExtraSize int `yaml:"roomExtraSize" json:"roomExtraSize"`

	// WindingPercent is the 0-100 probability that maze growth continues in
	// its previous direction when that direction is still carveable.
	WindingPercent int `yaml:"windingPercent" json:"windingPercent"`

	// Multiplier scales the normalized stage dimensions.
	Multiplier int `yaml:"multiplier" json:"multiplier"`

	// RemoveDeadEnds enables the optional dead-end pruning stage.
	RemoveDeadEnds bool `yaml:"removeDeadEnds" json:"removeDeadEnds"`
}

// DefaultOptions returns the documented default option values.
func DefaultOptions() Options {
	return Options{
		DoorChance:     50,
		MaxDoors:       5,
		RoomTries:      50,
		RoomExtraSize:  0,
		WindingPercent: 50,
		Multiplier:     1,
		RemoveDeadEnds: false,
	}
}

// Validate checks that every option is within a usable range.
func (o *Options) Validate() error {
	if o.DoorChance < 1 {
		return fmt.Errorf("doorChance must be >= 1, got %d", o.DoorChance)
	}
	if o.MaxDoors < 1 {
		return fmt.Errorf("maxDoors must be >= 1, got %d", o.MaxDoors)
	}
	if o.RoomTries < 0 {
		return fmt.Errorf("roomTries must be >= 0, got %d", o.RoomTries)
	}
	if o.RoomExtraSize < 0 {
		return fmt.Errorf("roomExtraSize must be >= 0, got %d", o.RoomExtraSize)
	}
	if o.WindingPercent < 0 || o.WindingPercent > 100 {
		return fmt.Errorf("windingPercent must be in [0,100], got %d", o.WindingPercent)
	}
	if o.Multiplier < 1 {
		return fmt.Errorf("multiplier must be >= 1, got %d", o.Multiplier)
	}
	return nil
}

// Request is the full YAML-loadable input to Build: stage dimensions, the
// optional seed, and the tuning Options.
type Request struct {
	Width   int     `yaml:"width" json:"width"`
	Height  int     `yaml:"height" json:"height"`
	Seed    string  `yaml:"seed,omitempty" json:"seed,omitempty"`
	Options Options `yaml:"options" json:"options"`
}

// DefaultRequest returns a Request with default Options and no width,
// height, or seed set; callers fill in the stage dimensions before calling
// Build.
func DefaultRequest() Request {
	return Request{Options: DefaultOptions()}
}

// Validate checks the request's Options. Width/Height bounds are checked by
// Build itself, since an invalid dimension is reported as
// InvalidDimensionError rather than a generic validation error.
func (r *Request) Validate() error {
	return r.Options.Validate()
}

// LoadRequest reads and validates a YAML request document from path.
func LoadRequest(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}
	return LoadRequestFromBytes(data)
}

// LoadRequestFromBytes parses a YAML request document from raw bytes. Any
// options omitted from the document keep their DefaultOptions value.
func LoadRequestFromBytes(data []byte) (*Request, error) {
	req := DefaultRequest()
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &req, nil
}

// ToYAML serializes the request back to YAML, e.g. to record the exact
// request (including an auto-generated seed) a caller used.
func (r *Request) ToYAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// Hash computes a deterministic digest of the options, for log correlation
// only. It must never be fed back into the PRNG: the pipeline's single
// seeded stream is derived solely from Request.Seed (see rng.New), and
// mixing an options hash here would make sub-stages non-reproducible from
// the seed string alone.
func (o *Options) Hash() []byte {
	data, err := yaml.Marshal(o)
	if err != nil {
		data = []byte(fmt.Sprintf("%+v", o))
	}
	sum := sha256.Sum256(data)
	return sum[:]
}
