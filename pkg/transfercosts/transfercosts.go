// Package transfercosts calculates the once-off costs of a South African
// property purchase: transfer duty, conveyancing attorney fees, and the
// fixed registration charges.
package transfercosts

import (
	"github.com/avanzyl/property-forecast/pkg/constants"
	"github.com/avanzyl/property-forecast/pkg/mathutil"
)

// dutyBracket is one band of the progressive transfer duty schedule. Duty
// within a band is the cumulative duty of all lower bands plus the marginal
// rate applied to the excess over the band floor.
type dutyBracket struct {
	Floor   float64 // lower bound of the band (exclusive)
	Base    float64 // cumulative duty at the band floor
	Rate    float64 // marginal rate on the excess over Floor
	Ceiling float64 // upper bound of the band (inclusive); 0 means unbounded
}

// transferDutySchedule is the SARS transfer duty table effective 1 March
// 2020. Treat this as a versioned constant table; replace wholesale when a
// new schedule is published.
var transferDutySchedule = []dutyBracket{
	{Floor: 0, Base: 0, Rate: 0, Ceiling: 1_000_000},
	{Floor: 1_000_000, Base: 0, Rate: 0.03, Ceiling: 1_375_000},
	{Floor: 1_375_000, Base: 11_250, Rate: 0.06, Ceiling: 1_925_000},
	{Floor: 1_925_000, Base: 44_250, Rate: 0.08, Ceiling: 2_475_000},
	{Floor: 2_475_000, Base: 88_250, Rate: 0.11, Ceiling: 11_000_000},
	{Floor: 11_000_000, Base: 1_026_000, Rate: 0.13, Ceiling: 0},
}

// feeBand is one band of the conveyancer fee tariff: a fixed base fee plus a
// marginal rate on the excess over the band floor.
type feeBand struct {
	Floor   float64
	Base    float64
	Rate    float64
	Ceiling float64 // 0 means unbounded
}

// attorneyFeeTariff is the guideline conveyancing tariff by purchase price.
// The tariff amounts exclude VAT; AttorneyFees applies the VAT uplift.
var attorneyFeeTariff = []feeBand{
	{Floor: 0, Base: 11_350, Rate: 0, Ceiling: 500_000},
	{Floor: 500_000, Base: 11_350, Rate: 0.015, Ceiling: 1_000_000},
	{Floor: 1_000_000, Base: 18_850, Rate: 0.012, Ceiling: 2_000_000},
	{Floor: 2_000_000, Base: 30_850, Rate: 0.010, Ceiling: 5_000_000},
	{Floor: 5_000_000, Base: 60_850, Rate: 0.008, Ceiling: 0},
}

// PurchaseCosts holds the once-off cost breakdown for a purchase.
type PurchaseCosts struct {
	TransferDuty          float64 `json:"transferDuty"`
	AttorneyFees          float64 `json:"attorneyFees"`
	DeedsOfficeFee        float64 `json:"deedsOfficeFee"`
	ElectronicTransferFee float64 `json:"electronicTransferFee"`
	Total                 float64 `json:"total"`
}

// CalculateTransferDuty returns the transfer duty payable on a purchase
// price per the progressive schedule. Band ceilings are inclusive so duty is
// continuous across thresholds. The price is not validated here; callers
// validate at the orchestrator boundary.
func CalculateTransferDuty(purchasePrice float64) float64 {
	for _, bracket := range transferDutySchedule {
		if bracket.Ceiling == 0 || purchasePrice <= bracket.Ceiling {
			return bracket.Base + bracket.Rate*(purchasePrice-bracket.Floor)
		}
	}
	return 0
}

// CalculateAttorneyFees returns the conveyancing attorney fee for a purchase
// price: the tariff band fee plus the VAT uplift.
func CalculateAttorneyFees(purchasePrice float64) float64 {
	for _, band := range attorneyFeeTariff {
		if band.Ceiling == 0 || purchasePrice <= band.Ceiling {
			return (band.Base + band.Rate*(purchasePrice-band.Floor)) * constants.VATMultiplier
		}
	}
	return 0
}

// CalculatePurchaseCosts assembles the full once-off cost breakdown for a
// purchase price.
func CalculatePurchaseCosts(purchasePrice float64) PurchaseCosts {
	costs := PurchaseCosts{
		TransferDuty:          CalculateTransferDuty(purchasePrice),
		AttorneyFees:          CalculateAttorneyFees(purchasePrice),
		DeedsOfficeFee:        constants.DeedsOfficeFee,
		ElectronicTransferFee: constants.ElectronicTransferFee,
	}
	costs.Total = mathutil.Round(costs.TransferDuty + costs.AttorneyFees +
		costs.DeedsOfficeFee + costs.ElectronicTransferFee)
	return costs
}
