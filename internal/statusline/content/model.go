package content

import (
	"context"

	appconfig "github.com/young1lin/cc-sakura-line/internal/config"
)

// ModelCollector collects the model display name
type ModelCollector struct {
	*BaseCollector
	env envLookup
}

// NewModelCollector creates a new model collector
func NewModelCollector(getenv func(string) string) *ModelCollector {
	return &ModelCollector{
		BaseCollector: NewBaseCollector(ContentModel, 0),
		env:           getenv,
	}
}

// Collect returns CC_MODEL, the display name, the registry name for the id,
// or the raw id
func (c *ModelCollector) Collect(ctx context.Context, in *Input) (string, error) {
	if v := c.env.get("CC_MODEL"); v != "" {
		return v, nil
	}
	if name := in.String("model", "display_name"); name != "" {
		return name, nil
	}
	id := in.String("model", "id")
	if name := appconfig.GetModelName(id); name != "" {
		return name, nil
	}
	return id, nil
}
