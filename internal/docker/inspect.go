package docker

import "github.com/spade-lang/spade-docker/internal"

// Label key marking images produced by this tool.
const ownershipKey = "tool"

// Reports whether the inspected image carries this tool's ownership label.
//
// The label must be present and exactly equal to the tool name. A missing
// config section, label map, or key means "not ours", never an error: the
// prune path skips unrelated images instead of failing on them.
func (i *Inspection) Owned() bool {
	if i == nil {
		return false
	}
	return i.Config.Labels[ownershipKey] == internal.Name
}
