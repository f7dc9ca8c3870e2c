package domain

// Address carries the postal code of an origin or destination.
// Other address fields may be present on the wire but only the zip is used.
type Address struct {
	Zip string `json:"zip"`
}

// Dimensions holds the three sides of an item or package.
type Dimensions struct {
	Width  *Measurement `json:"width,omitempty"`
	Height *Measurement `json:"height,omitempty"`
	Length *Measurement `json:"length,omitempty"`
}

// CartItem is a single cart line as received from the storefront.
type CartItem struct {
	// Price is the unit price of the item.
	Price float64 `json:"price"`
	// Quantity is the number of units in the cart.
	Quantity int `json:"quantity"`
	// Dimensions are the per-unit item dimensions, if declared.
	Dimensions *Dimensions `json:"dimensions,omitempty"`
	// Weight is the per-unit physical weight, if declared.
	Weight *Measurement `json:"weight,omitempty"`
}

// QuoteParams is the calculate-shipping request payload.
type QuoteParams struct {
	// From is the origin address. Falls back to the merchant configured zip.
	From *Address `json:"from,omitempty"`
	// To is the destination address. Absent means a free shipping preview.
	To *Address `json:"to,omitempty"`
	// Items is the cart content.
	Items []CartItem `json:"items,omitempty"`
	// Subtotal, when present, overrides the item-summed declared value.
	Subtotal *float64 `json:"subtotal,omitempty"`
	// ServiceCode restricts the quote to a single carrier modality.
	ServiceCode string `json:"service_code,omitempty"`
}
