package database

import (
	"log"

	"github.com/indunissanka/qbread/models"
	"gorm.io/gorm"
)

// DefaultProducts is the bootstrap catalog inserted into an empty database.
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Classic Croissant",
			Description: "Buttery, flaky French pastry",
			Price:       models.MustMoney("3.50"),
			Image:       "https://images.unsplash.com/photo-1555507036-ab1f4038808a",
			Category:    "Pastries",
		},
		{
			Name:        "Sourdough Bread",
			Description: "Traditional artisan bread",
			Price:       models.MustMoney("6.00"),
			Image:       "https://images.unsplash.com/photo-1504469288085-feb62ad2903d",
			Category:    "Breads",
		},
		{
			Name:        "Chocolate Cake",
			Description: "Rich chocolate layer cake",
			Price:       models.MustMoney("28.00"),
			Image:       "https://images.unsplash.com/photo-1587241321921-91a834d6d191",
			Category:    "Cakes",
		},
	}
}

// SeedProducts inserts the default catalog only when the products table is
// empty. Idempotent bootstrap, not a migration.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := DefaultProducts()
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d products", len(products))
	return nil
}
