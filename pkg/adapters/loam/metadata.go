package loam

// Metadata is the front matter of an automaton document.
// Structural fields stay loosely typed so that numeric state names written by hand
// (states: [0, 1]) survive decoding; schema.Decode coerces them afterwards.
type Metadata struct {
	ID          string `json:"id" mapstructure:"id"`
	Name        string `json:"name" mapstructure:"name"`
	Description string `json:"description" mapstructure:"description"`

	Alphabet    any `json:"alphabet" mapstructure:"alphabet"`
	States      any `json:"states" mapstructure:"states"`
	Initial     any `json:"initial" mapstructure:"initial"`
	Final       any `json:"final" mapstructure:"final"`
	Transitions any `json:"transitions" mapstructure:"transitions"`
	Delta       any `json:"delta" mapstructure:"delta"`
}

func (m Metadata) raw() map[string]any {
	raw := make(map[string]any)
	put := func(key string, v any) {
		if v != nil {
			raw[key] = v
		}
	}
	put("alphabet", m.Alphabet)
	put("states", m.States)
	put("initial", m.Initial)
	put("final", m.Final)
	put("transitions", m.Transitions)
	put("delta", m.Delta)
	if m.Description != "" {
		raw["description"] = m.Description
	}
	return raw
}
