package release

import (
	"bytes"

	"github.com/aymanbagabas/go-udiff"
)

// manifestDiff returns a unified diff of the manifest against its state at
// the start of the run, or an empty string when it is unchanged.
func (o *Orchestrator) manifestDiff() string {
	if o.desc.Manifest == nil {
		return ""
	}
	after := o.desc.Manifest.Raw()
	if bytes.Equal(o.manifestBefore, after) {
		return ""
	}
	return udiff.Unified(o.cfg.Paths.Manifest, o.cfg.Paths.Manifest, string(o.manifestBefore), string(after))
}
