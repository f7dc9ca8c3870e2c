package domain

// DeliveryTime is the estimated transit time for a shipping line.
type DeliveryTime struct {
	Days        int  `json:"days"`
	WorkingDays bool `json:"working_days"`
}

// LinePostingDeadline is the posting deadline reported on a shipping line.
type LinePostingDeadline struct {
	Days          int   `json:"days"`
	WorkingDays   *bool `json:"working_days,omitempty"`
	AfterApproval *bool `json:"after_approval,omitempty"`
}

// Additional is an extra fee attached to a shipping line.
type Additional struct {
	Tag   string  `json:"tag"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// ShippingLine is the priced shipping option inside a quote.
type ShippingLine struct {
	From             *Address            `json:"from,omitempty"`
	To               *Address            `json:"to,omitempty"`
	Package          Package             `json:"package"`
	Price            float64             `json:"price"`
	DeclaredValue    float64             `json:"declared_value"`
	Discount         float64             `json:"discount"`
	TotalPrice       float64             `json:"total_price"`
	DeliveryTime     DeliveryTime        `json:"delivery_time"`
	PostingDeadline  LinePostingDeadline `json:"posting_deadline"`
	Flags            []string            `json:"flags"`
	OtherAdditionals []Additional        `json:"other_additionals,omitempty"`
}

// ShippingService is one priced shipping option in the response.
type ShippingService struct {
	Label            string       `json:"label"`
	Carrier          string       `json:"carrier"`
	CarrierDocNumber string       `json:"carrier_doc_number"`
	ServiceCode      string       `json:"service_code"`
	ServiceName      string       `json:"service_name"`
	ShippingLine     ShippingLine `json:"shipping_line"`
}

// QuoteResponse is the calculate-shipping success payload.
type QuoteResponse struct {
	ShippingServices      []ShippingService `json:"shipping_services"`
	FreeShippingFromValue *float64          `json:"free_shipping_from_value,omitempty"`
}
