package memory

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goto/approvalflow/domain"
)

//go:embed seed.json
var defaultSeed []byte

// Seed is the initial content of the store.
type Seed struct {
	Users    []*domain.User            `json:"users"`
	Requests []*domain.ApprovalRequest `json:"approval_requests"`
}

// LoadSeed reads a seed file. An empty path loads the built-in seed.
func LoadSeed(path string) (*Seed, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading seed file: %w", err)
		}
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	return &seed, nil
}

// DefaultSeed returns a fresh copy of the built-in seed.
func DefaultSeed() *Seed {
	seed, err := ParseSeed(defaultSeed)
	if err != nil {
		panic(err)
	}
	return seed
}
