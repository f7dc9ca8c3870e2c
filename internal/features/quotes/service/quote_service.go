package service

import (
	"context"
	"errors"
	"fmt"

	"jadlog-rates/internal/core/logger"
	"jadlog-rates/internal/features/quotes/domain"
	"jadlog-rates/internal/features/quotes/ports"

	"go.uber.org/zap"
)

// QuoteService computes shipping quotes: it aggregates the cart into a
// single parcel, rates it against the carrier in one batched call and applies
// the merchant shipping rules to each returned price.
type QuoteService struct {
	provider ports.RateProvider
	logger   *zap.Logger
}

// NewQuoteService creates a new QuoteService with the given rate provider.
func NewQuoteService(provider ports.RateProvider) *QuoteService {
	return &QuoteService{
		provider: provider,
		logger:   logger.Get(),
	}
}

// CalculateShipping produces the priced shipping options for one request.
// Failures are returned as *domain.CalcError carrying a stable error code.
func (s *QuoteService) CalculateShipping(ctx context.Context, params *domain.QuoteParams, cfg *domain.MerchantConfig) (*domain.QuoteResponse, error) {
	response := &domain.QuoteResponse{
		ShippingServices: []domain.ShippingService{},
	}

	if cfg.FreeShippingFromValue != nil && *cfg.FreeShippingFromValue >= 0 {
		response.FreeShippingFromValue = cfg.FreeShippingFromValue
	}

	var destZip int
	hasDest := params.To != nil
	cepDes := ""
	if hasDest {
		cepDes = domain.NormalizeZip(params.To.Zip)
		n, err := domain.ZipToInt(cepDes)
		if err != nil {
			return nil, domain.NewCalcError(domain.CodeInvalidZip,
				"Destination zip code is not a valid CEP")
		}
		destZip = n
	}

	response.FreeShippingFromValue = domain.FreeShippingThreshold(
		cfg.ShippingRules, destZip, hasDest, response.FreeShippingFromValue)

	if !hasDest {
		// free shipping preview with no shipping address received
		return response, nil
	}

	cepOri := ""
	if params.From != nil {
		cepOri = domain.NormalizeZip(params.From.Zip)
	} else if cfg.Zip != "" {
		cepOri = domain.NormalizeZip(cfg.Zip)
	}

	contract := cfg.JadlogContract
	if cepOri == "" || contract == nil || contract.Account == "" || contract.Token == "" {
		return nil, domain.NewCalcError(domain.CodeConfigMissing,
			"Zip code or contract is unset on app hidden data (merchant must configure the app)")
	}
	if _, err := domain.ZipToInt(cepOri); err != nil {
		return nil, domain.NewCalcError(domain.CodeInvalidZip,
			"Origin zip code is not a valid CEP")
	}

	if len(params.Items) == 0 {
		return nil, domain.NewCalcError(domain.CodeEmptyCart,
			"Cannot calculate shipping without cart items")
	}

	pkg, err := domain.AggregatePackage(params.Items, params.Subtotal, cfg.FreeNoWeightShipping)
	if err != nil {
		return nil, domain.NewCalcError(domain.CodeEmptyCart, err.Error())
	}

	serviceCodes := cfg.ServiceCodes(params.ServiceCode)
	requests := make([]domain.RateRequest, 0, len(serviceCodes))
	for _, serviceCode := range serviceCodes {
		requests = append(requests, domain.NewRateRequest(serviceCode, cepOri, cepDes, pkg, contract))
	}

	result, err := s.provider.Rate(ctx, contract.Token, requests)
	if err != nil {
		var statusErr *domain.UpstreamStatusError
		if errors.As(err, &statusErr) {
			return nil, domain.NewCalcError(domain.CodeUnexpectedRsp,
				fmt.Sprintf("Unexpected Jadlog response with status: %d", statusErr.Status))
		}
		s.logger.Error("Jadlog rating call failed", zap.Error(err))
		return nil, domain.NewCalcError(domain.CodeUnexpectedRsp,
			"Unexpected Jadlog response")
	}

	for i, line := range result.Lines {
		if i >= len(requests) || !line.Usable() {
			continue
		}
		serviceCode := serviceCodes[i]
		rateRequest := requests[i]

		days, err := domain.EstimateDeadline(cepOri, cepDes, rateRequest.Modalidade)
		if err != nil {
			// zips were validated above, an estimator failure means a bug
			s.logger.Error("Deadline estimation failed",
				zap.String("cepori", cepOri),
				zap.String("cepdes", cepDes),
				zap.Error(err),
			)
			continue
		}

		shippingLine := domain.ShippingLine{
			From:          &domain.Address{Zip: cepOri},
			To:            params.To,
			Package:       pkg.Package,
			Price:         line.VlTotal,
			DeclaredValue: rateRequest.VlDeclarado,
			TotalPrice:    line.VlTotal,
			DeliveryTime: domain.DeliveryTime{
				Days:        days,
				WorkingDays: true,
			},
			PostingDeadline: postingDeadline(cfg),
			Flags:           []string{"jadlog-ws"},
		}

		if cfg.AdditionalPrice != nil && *cfg.AdditionalPrice != 0 {
			additional := *cfg.AdditionalPrice
			if additional > 0 {
				shippingLine.OtherAdditionals = []domain.Additional{{
					Tag:   "additional_price",
					Label: "Adicional padrão",
					Price: additional,
				}}
			} else {
				// negative additional price applies a discount
				shippingLine.Discount -= additional
			}
			shippingLine.TotalPrice += additional
			if shippingLine.TotalPrice < 0 {
				shippingLine.TotalPrice = 0
			}
		}

		domain.ApplyRules(cfg.ShippingRules, serviceCode, destZip, rateRequest.VlDeclarado, &shippingLine)

		response.ShippingServices = append(response.ShippingServices, domain.ShippingService{
			Label:            cfg.ServiceLabel(serviceCode),
			Carrier:          domain.CarrierName,
			CarrierDocNumber: domain.CarrierDocNumber,
			ServiceCode:      serviceCode,
			ServiceName:      fmt.Sprintf("%d: %s", rateRequest.Modalidade, serviceCode),
			ShippingLine:     shippingLine,
		})
	}

	if len(response.ShippingServices) == 0 {
		return nil, domain.NewCalcError(domain.CodeCarrierMsg,
			fmt.Sprintf("Jadlog erro: %s", result.ErrorMessage()))
	}

	if pkg.BillableWeight <= 0 && cfg.FreeNoWeightShipping {
		applyFreeNoWeight(response.ShippingServices)
	}

	return response, nil
}

// postingDeadline merges the 3-day default with the merchant setting.
func postingDeadline(cfg *domain.MerchantConfig) domain.LinePostingDeadline {
	deadline := domain.LinePostingDeadline{Days: 3}
	if cfg.PostingDeadline != nil {
		deadline.Days = cfg.PostingDeadline.Days
		deadline.WorkingDays = cfg.PostingDeadline.WorkingDays
		deadline.AfterApproval = cfg.PostingDeadline.AfterApproval
	}
	return deadline
}

// applyFreeNoWeight makes the cheapest non-free quote free and flags it.
// Quotes that are already free stay untouched.
func applyFreeNoWeight(services []domain.ShippingService) {
	cheapest := -1
	for i := range services {
		line := &services[i].ShippingLine
		if line.TotalPrice == 0 {
			continue
		}
		if cheapest < 0 || services[cheapest].ShippingLine.TotalPrice > line.TotalPrice {
			cheapest = i
		}
	}
	if cheapest < 0 {
		return
	}
	line := &services[cheapest].ShippingLine
	line.Discount += line.TotalPrice
	line.TotalPrice = 0
	line.Flags = append(line.Flags, "free_no_weight")
}
