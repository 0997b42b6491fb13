// SPDX-License-Identifier: AGPL-3.0-only

package convert

import (
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// IDGenerator hands out the ids of converted panels. Ids must be unique across a dashboard.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string { return f() }

// UUIDGenerator returns random version 4 UUIDs, like the N9E editor does for new panels.
func UUIDGenerator() IDGenerator {
	return IDGeneratorFunc(func() string {
		return uuid.NewString()
	})
}

// SequenceGenerator returns prefix1, prefix2, ... It makes conversions reproducible.
type SequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewID() string {
	return g.prefix + strconv.FormatUint(g.next.Inc(), 10)
}
