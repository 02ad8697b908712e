package config

import "lowperf/internal/waste"

type field func(p *waste.Params) *int

// sectionKeys maps section and key names to the Params field they set.
// The run section is handled separately.
var sectionKeys = map[string]map[string]field{
	"strings": {
		"iterations": func(p *waste.Params) *int { return &p.StringIterations },
	},
	"objects": {
		"iterations": func(p *waste.Params) *int { return &p.ObjectIterations },
		"tags":       func(p *waste.Params) *int { return &p.TagsPerRecord },
	},
	"collections": {
		"iterations":        func(p *waste.Params) *int { return &p.CollectionIterations },
		"placeholder_width": func(p *waste.Params) *int { return &p.PlaceholderWidth },
		"key_space":         func(p *waste.Params) *int { return &p.KeySpace },
	},
	"leak": {
		"iterations": func(p *waste.Params) *int { return &p.LeakIterations },
		"padding":    func(p *waste.Params) *int { return &p.PaddingWidth },
	},
	"boxing": {
		"iterations": func(p *waste.Params) *int { return &p.BoxingIterations },
		"sqrt_keys":  func(p *waste.Params) *int { return &p.SqrtKeys },
	},
	"run": nil,
}
