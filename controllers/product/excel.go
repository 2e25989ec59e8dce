package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Mdken1/storefront-api/cache"
	"github.com/Mdken1/storefront-api/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ImportProductsFromExcel bulk-loads the catalog from an uploaded xlsx in the
// export format. Rows with an existing ID update that product, the rest are
// created; unparseable rows are counted and skipped.
// POST /api/admin/products/import-excel
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0
		var touchedIDs []string

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id := get(0)
			name := get(1)
			description := get(2)
			priceStr := get(3)
			salePriceStr := get(4)
			categoryID := get(5)
			stock, _ := strconv.Atoi(get(6))
			featured, _ := strconv.ParseBool(get(7))
			imageURL := get(8)

			if name == "" {
				skippedCount++
				continue
			}
			if _, err := strconv.ParseFloat(priceStr, 64); err != nil {
				skippedCount++
				continue
			}

			product := models.Product{
				Name:        name,
				Description: description,
				Price:       models.Numeric(priceStr),
				Stock:       models.Units(stock),
				Featured:    featured,
				ImageURL:    imageURL,
			}
			if salePriceStr != "" {
				sp := models.Numeric(salePriceStr)
				product.SalePrice = &sp
			}
			if categoryID != "" {
				product.CategoryID = &categoryID
			}

			if id != "" {
				var existing models.Product
				if err := db.First(&existing, "id = ?", id).Error; err == nil {
					product.ID = existing.ID
					product.CreatedAt = existing.CreatedAt
					if err := db.Save(&product).Error; err == nil {
						updatedCount++
						touchedIDs = append(touchedIDs, product.ID)
						continue
					}
					skippedCount++
					continue
				}
			}

			if err := db.Create(&product).Error; err == nil {
				createdCount++
				touchedIDs = append(touchedIDs, product.ID)
			} else {
				skippedCount++
			}
		}

		cache.InvalidateProducts(touchedIDs...)
		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
