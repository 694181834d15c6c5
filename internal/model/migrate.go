package model

import (
	"fmt"

	"gorm.io/gorm"
)

// Tables lists every record type owned by this service, parents first.
func Tables() []interface{} {
	return []interface{}{
		&SolutionRecord{},
		&SeriesRecord{},
		&ProductRecord{},
		&CatalogRequestRecord{},
		&InquiryRecord{},
		&CareerRecord{},
		&CompanyRecord{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	for _, table := range Tables() {
		if err := db.AutoMigrate(table); err != nil {
			return fmt.Errorf("migrate %T: %w", table, err)
		}
	}
	return nil
}
