package domain

// Carrier identity reported on every quote.
const (
	CarrierName      = "Jadlog"
	CarrierDocNumber = "04884082000135"
)

// ModalityFor maps a merchant-facing service code to the carrier internal
// numeric modality. Unknown codes map to 0.
func ModalityFor(serviceCode string) int {
	switch serviceCode {
	case ".PACKAGE":
		return 3
	case "RODOVIÁRIO":
		return 4
	case "ECONÔMICO":
		return 5
	case "DOC":
		return 6
	case "CORPORATE":
		return 7
	case ".COM":
		return 9
	case "CARGO":
		return 12
	case "EMERGENCIAL":
		return 14
	}
	return 0
}

// IsExpressModality reports whether a modality belongs to the express service
// tier. Zero (unset/unknown) is treated as express.
func IsExpressModality(modality int) bool {
	return modality <= 7
}

// RateRequest is one line of the batched carrier rating payload.
type RateRequest struct {
	Modalidade  int     `json:"modalidade"`
	CepOri      string  `json:"cepori"`
	CepDes      string  `json:"cepdes"`
	Peso        float64 `json:"peso"`
	VlDeclarado float64 `json:"vldeclarado"`
	Frap        *bool   `json:"frap"`
	TpEntrega   string  `json:"tpentrega"`
	TpSeguro    string  `json:"tpseguro"`
	Conta       string  `json:"conta"`
	Contrato    string  `json:"contrato"`
	VlColeta    float64 `json:"vlcoleta"`
}

// NewRateRequest mounts the carrier payload line for one service code.
func NewRateRequest(serviceCode, cepOri, cepDes string, pkg *AggregatedPackage, contract *JadlogContract) RateRequest {
	tpSeguro := "N"
	if contract.InsuranceType == "Apólice própria" {
		tpSeguro = "A"
	}
	return RateRequest{
		Modalidade:  ModalityFor(serviceCode),
		CepOri:      cepOri,
		CepDes:      cepDes,
		Peso:        pkg.RatedWeight(),
		VlDeclarado: pkg.RatedValue(),
		TpEntrega:   "D",
		TpSeguro:    tpSeguro,
		Conta:       contract.Account,
		Contrato:    contract.Contract,
		VlColeta:    contract.CollectionCost,
	}
}

// RateLine is one line of the carrier rating response, aligned by index with
// the request batch. Either a total price or an error is present.
type RateLine struct {
	VlTotal float64 `json:"vltotal,omitempty"`
	Error   any     `json:"error,omitempty"`
}

// Usable reports whether the line carries a price this module can quote.
func (l RateLine) Usable() bool {
	return l.VlTotal > 0 && l.Error == nil
}

// RateError is the carrier top-level error block.
type RateError struct {
	Descricao string `json:"descricao"`
}

// RateResult is the parsed carrier rating response.
type RateResult struct {
	Lines []RateLine `json:"frete"`
	Error *RateError `json:"erro,omitempty"`
}

// ErrorMessage returns the carrier reported error text, if any.
func (r *RateResult) ErrorMessage() string {
	if r.Error == nil {
		return ""
	}
	return r.Error.Descricao
}
