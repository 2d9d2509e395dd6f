package mgusdk

// PremiumPeriod is how often a premium is paid.
type PremiumPeriod string

const (
	PremiumMonthly PremiumPeriod = "Month"
	PremiumAnnual  PremiumPeriod = "Annual"
)

// Valid reports whether p is a period the provider accepts.
func (p PremiumPeriod) Valid() bool {
	return p == PremiumMonthly || p == PremiumAnnual
}

// LossCover selects whether loss cover is included in a basket.
type LossCover string

const (
	LossCoverYes LossCover = "Yes"
	LossCoverNo  LossCover = "No"
)

// Valid reports whether l is a value the provider accepts.
func (l LossCover) Valid() bool {
	return l == LossCoverYes || l == LossCoverNo
}

// Gadget types known to the provider catalogue.
const (
	GadgetMobilePhone = "MobilePhone"
	GadgetTablet      = "Tablet"
	GadgetLaptop      = "Laptop"
)

// DeviceData identifies a device to quote for.
type DeviceData struct {
	ManufacturerID string `json:"ManufacturerID"`
	GadgetType     string `json:"GadgetType"`
	Model          string `json:"Model"`
}
