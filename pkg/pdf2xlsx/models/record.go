package models

// EstimateRecord is a line item read in fixed-field mode.
type EstimateRecord struct {
	// Code is the rate code.
	Code string `json:"code"`
	// Name is the composite rate name.
	Name string `json:"name"`
	// Unit is the unit of measure.
	Unit string `json:"unit"`
	// Quantity is the physical volume.
	Quantity string `json:"qty"`
	// Price is the unit cost including tax.
	Price string `json:"price"`
}

// EstimateHeaders are the column names of a fixed-field table.
var EstimateHeaders = []string{"Code", "Name", "Unit", "Quantity", "Unit price"}

// Cells returns the record as a row in EstimateHeaders order.
func (r EstimateRecord) Cells() RawRow {
	return RawRow{r.Code, r.Name, r.Unit, r.Quantity, r.Price}
}
