package release

import (
	"errors"

	"github.com/conn-castle/pack-release/internal/messages"
)

// ErrPublishNotImplemented is returned whenever the reserved publish stage
// is invoked.
var ErrPublishNotImplemented = errors.New(messages.PublishNotImplemented)

// Publish is the reserved packaging/marketplace stage. Run does not invoke
// it; wiring it back into the flow makes every release fail until the stage
// is actually implemented.
func (o *Orchestrator) Publish() error {
	return ErrPublishNotImplemented
}
