package writer

import "github.com/xuri/excelize/v2"

// borderThin is the excelize border style index for a thin line.
const borderThin = 1

func thinBorders() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "000000", Style: borderThin}
	}
	return borders
}

// headerStyle is bold, centered, thin-bordered.
func headerStyle() *excelize.Style {
	return &excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	}
}

// dataStyle is centered and thin-bordered.
func dataStyle() *excelize.Style {
	return &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	}
}

type styleIDs struct {
	header int
	data   int
}

func registerStyles(f *excelize.File) (styleIDs, error) {
	var ids styleIDs
	var err error
	if ids.header, err = f.NewStyle(headerStyle()); err != nil {
		return ids, err
	}
	if ids.data, err = f.NewStyle(dataStyle()); err != nil {
		return ids, err
	}
	return ids, nil
}
