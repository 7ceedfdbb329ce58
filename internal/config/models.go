package config

import "strings"

// ModelInfo contains metadata about a Claude model
type ModelInfo struct {
	Name          string
	ContextWindow uint64
}

// ModelInfoRegistry maps model IDs (or ID prefixes) to their metadata
var ModelInfoRegistry = map[string]ModelInfo{
	"claude-opus-4-5-20251101":   {Name: "Opus 4.5", ContextWindow: 200000},
	"claude-sonnet-4-5-20250929": {Name: "Sonnet 4.5", ContextWindow: 200000},
	"claude-haiku-4-5-20251001":  {Name: "Haiku 4.5", ContextWindow: 200000},
	"claude-opus-4-1-20250805":   {Name: "Opus 4.1", ContextWindow: 200000},
	"claude-opus-4-20250514":     {Name: "Opus 4", ContextWindow: 200000},
	"claude-sonnet-4-20250514":   {Name: "Sonnet 4", ContextWindow: 200000},
	"claude-3-7-sonnet-20250219": {Name: "Sonnet 3.7", ContextWindow: 200000},
	"claude-3-5-haiku-20241022":  {Name: "Haiku 3.5", ContextWindow: 200000},

	// Prefixes for version variations
	"claude-opus-4-5":   {Name: "Opus 4.5", ContextWindow: 200000},
	"claude-sonnet-4-5": {Name: "Sonnet 4.5", ContextWindow: 200000},
	"claude-haiku-4-5":  {Name: "Haiku 4.5", ContextWindow: 200000},
	"claude-opus-4-1":   {Name: "Opus 4.1", ContextWindow: 200000},
	"claude-opus-4":     {Name: "Opus 4", ContextWindow: 200000},
	"claude-sonnet-4":   {Name: "Sonnet 4", ContextWindow: 200000},
}

// LookupModel returns model info for a model ID: an exact match first, then
// the longest registered prefix of the ID. Suffixes such as "[1m]" therefore
// resolve to their base model.
func LookupModel(modelID string) (ModelInfo, bool) {
	if modelID == "" {
		return ModelInfo{}, false
	}
	if info, ok := ModelInfoRegistry[modelID]; ok {
		return info, true
	}

	best := ""
	for k := range ModelInfoRegistry {
		if strings.HasPrefix(modelID, k) && len(k) > len(best) {
			best = k
		}
	}
	if best == "" {
		return ModelInfo{}, false
	}
	return ModelInfoRegistry[best], true
}

// GetModelName returns a human-readable model name, or "" when unknown
func GetModelName(modelID string) string {
	info, _ := LookupModel(modelID)
	return info.Name
}

// GetContextWindow returns the context window size, or 0 when unknown
func GetContextWindow(modelID string) uint64 {
	info, _ := LookupModel(modelID)
	return info.ContextWindow
}
