package catalogsource

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx"

	"github.com/nicolesequeira/simpleshop/models"
)

// FromXLSX reads products from the first sheet of an Excel workbook.
// Row 0 is the header; columns are id, name, description, category,
// price, image. Rows with too few cells or a bad id/price are skipped.
func FromXLSX(path string) ([]models.Product, error) {
	xlFile, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrLoadFailed, path, err)
	}
	if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
		return nil, fmt.Errorf("%w: %s: empty or missing header row", ErrLoadFailed, path)
	}

	sheet := xlFile.Sheets[0]
	var products []models.Product
	for i := 1; i < sheet.MaxRow; i++ {
		row := sheet.Rows[i]

		get := func(index int) string {
			if index < len(row.Cells) {
				return strings.TrimSpace(row.Cells[index].String())
			}
			return ""
		}

		id, err := strconv.Atoi(get(0))
		if err != nil {
			continue
		}
		price, err := strconv.ParseFloat(get(4), 64)
		if err != nil {
			continue
		}

		products = append(products, models.Product{
			ID:          id,
			Name:        get(1),
			Description: get(2),
			Category:    get(3),
			Price:       price,
			Image:       get(5),
		})
	}
	return products, nil
}
