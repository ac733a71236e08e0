package request

import (
	"strings"

	"printlite/internal/domain/entities"
)

type FileDetailRequest struct {
	Name  string `json:"name" binding:"required"`
	Size  int64  `json:"size"`
	Pages int    `json:"pages" binding:"required"`
}

// PrintSettingsRequest carries the raw setting strings as the storefront UI
// sends them. Enum validation happens in the pricing engine; this layer only
// normalizes the spelling variants the legacy clients use.
type PrintSettingsRequest struct {
	PaperType   string `json:"paperType"`
	ColorOption string `json:"colorOption"`
	PrintSides  string `json:"printSides"`
	Binding     string `json:"binding"`
	Copies      int    `json:"copies"`
}

// CreateOrderRequest is the checkout payload produced by the storefront after
// file upload. File bytes never travel through this API; only metadata does.
type CreateOrderRequest struct {
	CustomerName        string               `json:"customerName" binding:"required"`
	Email               string               `json:"email"`
	Phone               string               `json:"phone"`
	DeliveryAddress     string               `json:"deliveryAddress" binding:"required"`
	FileDetails         []FileDetailRequest  `json:"fileDetails" binding:"required"`
	PrintSettings       PrintSettingsRequest `json:"printSettings" binding:"required"`
	PageRange           string               `json:"pageRange"`
	PaymentMethod       string               `json:"paymentMethod" binding:"required"`
	SpecialInstructions string               `json:"specialInstructions"`
}

func (r CreateOrderRequest) ResolveFiles() []entities.FileDetail {
	files := make([]entities.FileDetail, 0, len(r.FileDetails))
	for _, f := range r.FileDetails {
		files = append(files, entities.FileDetail{
			Name:  strings.TrimSpace(f.Name),
			Size:  f.Size,
			Pages: f.Pages,
		})
	}
	return files
}

func (r CreateOrderRequest) ResolveSettings() entities.PrintSettings {
	return r.PrintSettings.Resolve()
}

func (r CreateOrderRequest) ResolvePaymentMethod() entities.PaymentMethod {
	return entities.PaymentMethod(normalize(r.PaymentMethod))
}

func (s PrintSettingsRequest) Resolve() entities.PrintSettings {
	copies := s.Copies
	if copies == 0 {
		copies = 1
	}
	return entities.PrintSettings{
		PaperType: resolvePaperType(s.PaperType),
		ColorMode: resolveColorMode(s.ColorOption),
		Sides:     resolveSides(s.PrintSides),
		Binding:   resolveBinding(s.Binding),
		Copies:    copies,
	}
}

// Absent optional settings get documented defaults; unknown non-empty values
// pass through so validation can reject them by name.

func resolvePaperType(v string) entities.PaperType {
	if normalize(v) == "" {
		return entities.PaperTypeStandard
	}
	return entities.PaperType(normalize(v))
}

func resolveBinding(v string) entities.Binding {
	if normalize(v) == "" {
		return entities.BindingNone
	}
	return entities.Binding(normalize(v))
}

func resolveColorMode(v string) entities.ColorMode {
	switch normalize(v) {
	case "bw", "b&w", "blackandwhite", "black_and_white", "black-and-white":
		return entities.ColorModeBlackAndWhite
	case "color", "colour":
		return entities.ColorModeColor
	}
	return entities.ColorMode(normalize(v))
}

func resolveSides(v string) entities.PrintSides {
	switch normalize(v) {
	case "", "single", "single-sided", "single_sided", "one-sided":
		return entities.SidesSingle
	case "double", "double-sided", "double_sided", "two-sided", "duplex":
		return entities.SidesDouble
	}
	return entities.PrintSides(normalize(v))
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
