package request

import "printlite/internal/domain/entities"

// QuoteRequest is the quick-quote payload. Legacy storefront clients spell
// some fields differently (`paperQuality` for paper, `printType` for color),
// so the resolvers accept both.
type QuoteRequest struct {
	Pages        int    `json:"pages" binding:"required"`
	Copies       int    `json:"copies"`
	PaperType    string `json:"paperType"`
	PaperQuality string `json:"paperQuality"`
	PrintType    string `json:"printType"`
	ColorOption  string `json:"colorOption"`
	Sides        string `json:"sides"`
	Binding      string `json:"binding"`
	PageRange    string `json:"pageRange"`
}

func (r QuoteRequest) ResolvePaperType() string {
	if v := normalize(r.PaperType); v != "" {
		return v
	}
	if v := normalize(r.PaperQuality); v != "" {
		return v
	}
	return string(entities.PaperTypeStandard)
}

func (r QuoteRequest) ResolveColorOption() string {
	if v := normalize(r.PrintType); v != "" {
		return v
	}
	return normalize(r.ColorOption)
}

func (r QuoteRequest) ResolveBinding() string {
	if v := normalize(r.Binding); v != "" {
		return v
	}
	return string(entities.BindingNone)
}

func (r QuoteRequest) ResolveCopies() int {
	if r.Copies < 1 {
		return 1
	}
	return r.Copies
}

func (r QuoteRequest) ResolveSettings() entities.PrintSettings {
	return entities.PrintSettings{
		PaperType: resolvePaperType(r.ResolvePaperType()),
		ColorMode: resolveColorMode(r.ResolveColorOption()),
		Sides:     resolveSides(r.Sides),
		Binding:   entities.Binding(r.ResolveBinding()),
		Copies:    r.ResolveCopies(),
	}
}
