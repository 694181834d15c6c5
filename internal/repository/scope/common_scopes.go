package scope

import "gorm.io/gorm"

// CatalogTree preloads series and products of solutions in a stable order.
func CatalogTree(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Series", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC, name ASC") }).
		Preload("Series.Products", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC, name ASC") })
}
