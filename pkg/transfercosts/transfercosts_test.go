package transfercosts

import (
	"math"
	"testing"

	"github.com/avanzyl/property-forecast/pkg/constants"
)

func TestCalculateTransferDuty(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		expected float64
	}{
		{"Below exemption threshold", 800000, 0},
		{"Exactly at exemption threshold", 1000000, 0},
		{"Second band", 1200000, 6000},       // (1200000-1000000)*0.03
		{"Top of second band", 1375000, 11250},
		{"Third band", 1500000, 18750},       // 11250 + (1500000-1375000)*0.06
		{"Fourth band", 2000000, 50250},      // 44250 + (2000000-1925000)*0.08
		{"Fifth band", 3000000, 146000},      // 88250 + (3000000-2475000)*0.11
		{"Top band", 12000000, 1156000},      // 1026000 + (12000000-11000000)*0.13
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateTransferDuty(tt.price)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("CalculateTransferDuty(%v) = %v, expected %v", tt.price, result, tt.expected)
			}
		})
	}
}

// Duty must be continuous at every bracket boundary: the lower band's formula
// at the threshold must match the upper band's zero-excess base.
func TestTransferDutyContinuity(t *testing.T) {
	thresholds := []float64{1000000, 1375000, 1925000, 2475000, 11000000}
	for _, threshold := range thresholds {
		below := CalculateTransferDuty(threshold)
		above := CalculateTransferDuty(threshold + 0.01)
		if math.Abs(above-below) > 0.01 {
			t.Errorf("duty discontinuous at %v: %v below vs %v just above", threshold, below, above)
		}
	}
}

func TestCalculateAttorneyFees(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		expected float64
	}{
		{"First band flat fee", 400000, 11350 * constants.VATMultiplier},
		{"Second band", 750000, (11350 + 250000*0.015) * constants.VATMultiplier},
		{"Third band", 1200000, (18850 + 200000*0.012) * constants.VATMultiplier},
		{"Fourth band", 3000000, (30850 + 1000000*0.010) * constants.VATMultiplier},
		{"Top band", 6000000, (60850 + 1000000*0.008) * constants.VATMultiplier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateAttorneyFees(tt.price)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("CalculateAttorneyFees(%v) = %v, expected %v", tt.price, result, tt.expected)
			}
		})
	}
}

func TestAttorneyFeesContinuity(t *testing.T) {
	thresholds := []float64{500000, 1000000, 2000000, 5000000}
	for _, threshold := range thresholds {
		below := CalculateAttorneyFees(threshold)
		above := CalculateAttorneyFees(threshold + 0.01)
		if math.Abs(above-below) > 0.01 {
			t.Errorf("attorney fee discontinuous at %v: %v below vs %v just above", threshold, below, above)
		}
	}
}

func TestCalculatePurchaseCosts(t *testing.T) {
	costs := CalculatePurchaseCosts(1200000)

	if costs.TransferDuty != 6000 {
		t.Errorf("TransferDuty = %v, expected 6000", costs.TransferDuty)
	}
	if costs.DeedsOfficeFee != constants.DeedsOfficeFee {
		t.Errorf("DeedsOfficeFee = %v, expected %v", costs.DeedsOfficeFee, constants.DeedsOfficeFee)
	}
	if costs.ElectronicTransferFee != constants.ElectronicTransferFee {
		t.Errorf("ElectronicTransferFee = %v, expected %v", costs.ElectronicTransferFee, constants.ElectronicTransferFee)
	}

	sum := costs.TransferDuty + costs.AttorneyFees + costs.DeedsOfficeFee + costs.ElectronicTransferFee
	if math.Abs(costs.Total-sum) > 0.01 {
		t.Errorf("Total = %v, expected sum of parts %v", costs.Total, sum)
	}
}
