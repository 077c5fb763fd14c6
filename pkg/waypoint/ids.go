package waypoint

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IDSource issues waypoint ids
type IDSource interface {
	NextID() string
}

// IDGenerator issues "<session>-<n>" ids. The counter only ever grows, so an
// id is never handed out twice by the same generator, regardless of how many
// points were deleted or how often the store was re-initialized.
type IDGenerator struct {
	session string
	counter uint64
}

// NewIDGenerator creates a generator with a fixed session token
func NewIDGenerator(session string) *IDGenerator {
	return &IDGenerator{session: session}
}

// NewSessionIDGenerator creates a generator with a random session token
func NewSessionIDGenerator() *IDGenerator {
	token, _, _ := strings.Cut(uuid.NewString(), "-")
	return NewIDGenerator(token)
}

// Session returns the session token
func (g *IDGenerator) Session() string {
	return g.session
}

// NextID returns the next unused id
func (g *IDGenerator) NextID() string {
	g.counter++
	return fmt.Sprintf("%s-%d", g.session, g.counter)
}
