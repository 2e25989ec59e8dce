package productcontroller

import (
	"net/http"

	"github.com/Mdken1/storefront-api/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportProductsToExcel streams the whole catalog as an xlsx download.
// GET /api/admin/products/export-excel
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Price", "SalePrice",
			"CategoryID", "Stock", "Featured", "ImageURL", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(string(p.Price))
			if p.SalePrice != nil {
				row.AddCell().SetValue(string(*p.SalePrice))
			} else {
				row.AddCell().SetValue("")
			}
			if p.CategoryID != nil {
				row.AddCell().SetValue(*p.CategoryID)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(int(p.Stock))
			row.AddCell().SetValue(p.Featured)
			row.AddCell().SetValue(p.ImageURL)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
