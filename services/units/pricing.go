package units

import (
	"math"

	"pillowstat/models"
	"pillowstat/utils"
)

const CleaningFee = 175.0

// MonthlyRate applies a percentage discount and rounds to whole dollars.
func MonthlyRate(base float64, discountPercent int) float64 {
	return math.Round(base * (1 - float64(discountPercent)/100))
}

// Quote prices a stay of the given contract length. Rent is billed per four-week month
// and the security deposit is one month at the discounted rate.
func (c *StaticCatalog) Quote(unitID string, weeks int) (*models.Quote, error) {
	u, ok := c.Get(unitID)
	if !ok {
		return nil, utils.NewNotFound("Unit not found")
	}
	var length *models.ContractLength
	for i := range c.lengths {
		if c.lengths[i].Weeks == weeks {
			length = &c.lengths[i]
			break
		}
	}
	if length == nil {
		return nil, utils.NewInvalidInput("weeks", "Contract length must be one of 8, 13 or 26 weeks")
	}

	rate := MonthlyRate(u.MonthlyPrice, length.Discount)
	rent := math.Round(rate * float64(weeks) / 4)
	return &models.Quote{
		UnitID:          u.ID,
		Weeks:           weeks,
		DiscountPercent: length.Discount,
		MonthlyRate:     rate,
		TotalRent:       rent,
		SecurityDeposit: rate,
		CleaningFee:     CleaningFee,
		Total:           rent + rate + CleaningFee,
	}, nil
}
