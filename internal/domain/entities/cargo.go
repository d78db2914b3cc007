package entities

// CargoItem is one line of the cargo a customer wants to ship.
//
// Weight is in kilograms and the three dimensions are in meters. Items only
// live for the duration of a quote request and are never persisted.
type CargoItem struct {
	Quantity int     `json:"quantity"`
	Weight   float64 `json:"weight"`
	Height   float64 `json:"height"`
	Width    float64 `json:"width"`
	Depth    float64 `json:"depth"`
}
