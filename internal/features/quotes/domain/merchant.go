package domain

import (
	"encoding/json"
	"fmt"
)

// JadlogContract holds the merchant contract credentials with the carrier.
type JadlogContract struct {
	Account        string  `json:"account"`
	Token          string  `json:"token"`
	Contract       string  `json:"contract"`
	DocNumber      string  `json:"doc_number"`
	InsuranceType  string  `json:"insurance_type"`
	CollectionCost float64 `json:"collection_cost"`
}

// ServiceOption is one merchant-enabled carrier modality with a display label.
type ServiceOption struct {
	Label       string `json:"label"`
	ServiceCode string `json:"service_code"`
}

// PostingDeadline is the merchant configured posting deadline.
type PostingDeadline struct {
	Days          int   `json:"days"`
	WorkingDays   *bool `json:"working_days,omitempty"`
	AfterApproval *bool `json:"after_approval,omitempty"`
}

// MerchantConfig is the resolved app configuration for one merchant,
// merged from visible and hidden settings. Consumed read-only.
type MerchantConfig struct {
	// Zip is the merchant origin postal code.
	Zip string `json:"zip"`
	// JadlogContract carries the carrier credentials from hidden data.
	JadlogContract *JadlogContract `json:"jadlog_contract,omitempty"`
	// Services are the enabled carrier modalities (at most 4).
	Services []ServiceOption `json:"services,omitempty"`
	// PostingDeadline overrides the 3-day default posting deadline.
	PostingDeadline *PostingDeadline `json:"posting_deadline,omitempty"`
	// AdditionalPrice is a flat fee (positive) or discount (negative)
	// applied to every quote.
	AdditionalPrice *float64 `json:"additional_price,omitempty"`
	// FreeNoWeightShipping makes the cheapest quote free when the whole
	// cart has zero physical weight.
	FreeNoWeightShipping bool `json:"free_no_weight_shipping,omitempty"`
	// FreeShippingFromValue seeds the advertised free shipping threshold.
	FreeShippingFromValue *float64 `json:"free_shipping_from_value,omitempty"`
	// ShippingRules is the ordered rule list (at most 300 entries).
	ShippingRules []ShippingRule `json:"shipping_rules,omitempty"`
}

// MergeMerchantConfig resolves the merchant configuration from the visible
// and hidden application data blocks. Hidden data wins on conflicting keys.
func MergeMerchantConfig(data, hiddenData json.RawMessage) (*MerchantConfig, error) {
	cfg := &MerchantConfig{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse application data: %w", err)
		}
	}
	if len(hiddenData) > 0 {
		if err := json.Unmarshal(hiddenData, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse application hidden data: %w", err)
		}
	}
	return cfg, nil
}

// ServiceLabel resolves the display label for a service code,
// falling back to a generated carrier label.
func (c *MerchantConfig) ServiceLabel(serviceCode string) string {
	for _, service := range c.Services {
		if service.ServiceCode == serviceCode && service.Label != "" {
			return service.Label
		}
	}
	return "Jadlog " + serviceCode
}

// ServiceCodes resolves the modalities to quote: the explicit request code
// when given, else the merchant enabled services, else the carrier defaults.
func (c *MerchantConfig) ServiceCodes(requested string) []string {
	if requested != "" {
		return []string{requested}
	}
	if len(c.Services) > 0 && c.Services[0].ServiceCode != "" {
		codes := make([]string, 0, len(c.Services))
		for _, service := range c.Services {
			codes = append(codes, service.ServiceCode)
		}
		return codes
	}
	return []string{".PACKAGE", ".COM"}
}
