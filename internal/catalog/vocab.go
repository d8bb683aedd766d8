package catalog

// Option is a filter choice shown to the user.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var toneOptions = []Option{
	{Any, "All tones"},
	{"warm", "Warm & light"},
	{"playful", "Playful flirty"},
	{"tender", "Tender deeper"},
	{"inside", "Inside‑joke"},
}

var occasionOptions = []Option{
	{Any, "Any occasion"},
	{"everyday", "Everyday"},
	{"morning", "Good morning"},
	{"night", "Good night"},
	{"rainy", "Rainy day"},
	{"milestone", "Milestone"},
}

// ToneOptions returns the tone filter choices, "any" first.
func ToneOptions() []Option {
	return append([]Option(nil), toneOptions...)
}

// OccasionOptions returns the occasion filter choices, "any" first.
func OccasionOptions() []Option {
	return append([]Option(nil), occasionOptions...)
}

// ValidTone reports whether tone is "any" or a known tone tag.
func ValidTone(tone string) bool {
	return hasKey(toneOptions, tone)
}

// ValidOccasion reports whether occasion is "any" or a known occasion tag.
func ValidOccasion(occasion string) bool {
	return hasKey(occasionOptions, occasion)
}

func hasKey(opts []Option, key string) bool {
	for _, o := range opts {
		if o.Key == key {
			return true
		}
	}
	return false
}
