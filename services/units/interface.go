package units

import "pillowstat/models"

// Catalog is the read-only set of rentable units.
type Catalog interface {
	List() []models.Unit
	Get(id string) (models.Unit, bool)
	ContractLengths() []models.ContractLength
	Quote(unitID string, weeks int) (*models.Quote, error)
}

// StaticCatalog serves a fixed unit list.
type StaticCatalog struct {
	units   []models.Unit
	byID    map[string]int
	lengths []models.ContractLength
}

// NewStaticCatalog builds a catalog over the given units; nil means the default property.
func NewStaticCatalog(list []models.Unit) *StaticCatalog {
	if list == nil {
		list = DefaultUnits()
	}
	c := &StaticCatalog{
		units:   list,
		byID:    make(map[string]int, len(list)),
		lengths: DefaultContractLengths(),
	}
	for i, u := range list {
		c.byID[u.ID] = i
	}
	return c
}

func (c *StaticCatalog) List() []models.Unit {
	out := make([]models.Unit, 0, len(c.units))
	for _, u := range c.units {
		out = append(out, cloneUnit(u))
	}
	return out
}

func (c *StaticCatalog) Get(id string) (models.Unit, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Unit{}, false
	}
	return cloneUnit(c.units[i]), true
}

func (c *StaticCatalog) ContractLengths() []models.ContractLength {
	return append([]models.ContractLength(nil), c.lengths...)
}

func cloneUnit(u models.Unit) models.Unit {
	u.Features = append([]string(nil), u.Features...)
	return u
}

// Summary is the compact unit shape embedded in booking detail views.
func Summary(u models.Unit) *models.UnitSummary {
	return &models.UnitSummary{ID: u.ID, Name: u.Name, Tier: u.Tier, MonthlyPrice: u.MonthlyPrice}
}
