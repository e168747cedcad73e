package uuid

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Generator issues collision-resistant booking ids backed by random
// 128-bit UUIDs.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) NewID(_ context.Context) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return id.String(), nil
}
