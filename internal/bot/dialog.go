package bot

import (
	"strings"

	"autoquote-bot/internal/pricing"
)

type option struct {
	Label string
	Value string
}

type question struct {
	Key     string
	Prompt  string
	Options []option
}

var serviceLabels = map[pricing.ServiceID]string{
	pricing.ServicePPF:             "🛡 Paint protection film",
	pricing.ServiceTint:            "🕶 Window tint",
	pricing.ServiceCeramic:         "✨ Ceramic coating",
	pricing.ServicePaintCorrection: "🔧 Paint correction",
}

var prompts = map[string]string{
	pricing.ParamVehicleType:    "What kind of vehicle is it?",
	pricing.ParamServiceType:    "Which coverage do you need?",
	pricing.ParamPPFType:        "Which film finish?",
	pricing.ParamTintRemoval:    "Does old tint need to be removed first?",
	pricing.ParamCoatingType:    "Which coating package?",
	pricing.ParamPaintCondition: "How would you rate the current paint condition?",
	pricing.ParamCustomerType:   "Are you a retail customer or a dealer?",
}

var optionLabels = map[string]map[string]string{
	pricing.ParamVehicleType: {
		"car":   "🚗 Car",
		"coupe": "🏎 Coupe",
		"truck": "🛻 Truck",
		"suv":   "🚙 SUV",
		"van":   "🚐 Van",
	},
	pricing.ParamServiceType: {
		"full-front":        "Full front",
		"track-pack":        "Track pack",
		"full-vehicle":      "Full vehicle",
		"replacement-parts": "Replacement parts",
	},
	pricing.ParamPPFType: {
		"standard": "Gloss (standard)",
		"stealth":  "Matte (stealth)",
	},
	pricing.ParamTintRemoval: {
		"false": "No removal",
		"true":  "Remove old tint",
	},
	pricing.ParamCoatingType: {
		"3-year": "3-year coating",
		"5-year": "5-year coating",
		"7-year": "7-year coating",
	},
	pricing.ParamPaintCondition: {
		"excellent": "Excellent",
		"good":      "Good",
		"fair":      "Fair",
		"poor":      "Poor",
		"severe":    "Severe",
	},
	pricing.ParamCustomerType: {
		"retail": "🙋 Retail",
		"dealer": "🏢 Dealer",
	},
}

func serviceOptions(services []pricing.Calculator) []option {
	opts := make([]option, 0, len(services))
	for _, s := range services {
		label, ok := serviceLabels[s.ID]
		if !ok {
			label = s.Name
		}
		opts = append(opts, option{Label: label, Value: string(s.ID)})
	}
	return opts
}

func questionsFor(c pricing.Calculator) []question {
	qs := make([]question, 0, len(c.Fields))
	for _, f := range c.Fields {
		q := question{Key: f.Key, Prompt: prompts[f.Key]}
		if q.Prompt == "" {
			q.Prompt = "Please choose " + f.Key
		}
		for _, v := range f.Options {
			label := optionLabels[f.Key][v]
			if label == "" {
				label = v
			}
			q.Options = append(q.Options, option{Label: label, Value: v})
		}
		qs = append(qs, q)
	}
	return qs
}

// matchOption accepts either the button label or the raw value.
func matchOption(opts []option, text string) (string, bool) {
	text = strings.TrimSpace(text)
	for _, o := range opts {
		if strings.EqualFold(text, o.Label) || strings.EqualFold(text, o.Value) {
			return o.Value, true
		}
	}
	return "", false
}
