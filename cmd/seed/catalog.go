package main

import "storefront/internal/models"

func img(id string) []string {
	return []string{"https://images.unsplash.com/photo-" + id + "?w=500"}
}

var sampleProducts = []models.Product{
	{
		Name:        "Wireless Bluetooth Headphones",
		Description: "Premium wireless headphones with active noise cancellation, 30-hour battery life, and superior sound quality. Perfect for music lovers and professionals.",
		Price:       199.99,
		Category:    models.CategoryElectronics,
		Brand:       "AudioTech",
		Stock:       50,
		Images:      img("1505740420928-5e560c06d30e"),
		Ratings:     models.Ratings{Average: 4.5, Count: 128},
		IsFeatured:  true,
	},
	{
		Name:        "Smart Watch Pro",
		Description: "Advanced fitness tracker with heart rate monitoring, GPS, and 7-day battery life. Track your health and stay connected.",
		Price:       299.99,
		Category:    models.CategoryElectronics,
		Brand:       "TechWear",
		Stock:       30,
		Images:      img("1523275335684-37898b6baf30"),
		Ratings:     models.Ratings{Average: 4.7, Count: 95},
		IsFeatured:  true,
	},
	{
		Name:        "Running Shoes - Air Zoom",
		Description: "Lightweight running shoes with responsive cushioning and breathable mesh upper. Designed for performance and comfort.",
		Price:       129.99,
		Category:    models.CategorySports,
		Brand:       "Nike",
		Stock:       100,
		Images:      img("1542291026-7eec264c27ff"),
		Ratings:     models.Ratings{Average: 4.6, Count: 210},
		IsFeatured:  true,
	},
	{
		Name:        "Yoga Mat Premium",
		Description: "Extra thick exercise mat with excellent cushioning and non-slip surface. Perfect for yoga, pilates, and fitness.",
		Price:       39.99,
		Category:    models.CategorySports,
		Brand:       "FitLife",
		Stock:       75,
		Images:      img("1601925260368-ae2f83cf8b7f"),
		Ratings:     models.Ratings{Average: 4.4, Count: 156},
	},
	{
		Name:        "Men's Cotton T-Shirt",
		Description: "Classic fit cotton t-shirt available in multiple colors. Soft, comfortable, and perfect for everyday wear.",
		Price:       24.99,
		Category:    models.CategoryClothing,
		Brand:       "ClassicWear",
		Stock:       200,
		Images:      img("1521572163474-6864f9cf17ab"),
		Ratings:     models.Ratings{Average: 4.3, Count: 340},
	},
	{
		Name:        "Women's Denim Jeans",
		Description: "Slim fit stretch denim jeans with classic 5-pocket styling. Comfortable and stylish for any occasion.",
		Price:       79.99,
		Category:    models.CategoryClothing,
		Brand:       "DenimCo",
		Stock:       80,
		Images:      img("1542272604-787c3835535d"),
		Ratings:     models.Ratings{Average: 4.5, Count: 187},
	},
	{
		Name:        "Coffee Maker Deluxe",
		Description: "Programmable coffee maker with 12-cup capacity, thermal carafe, and auto-brew feature. Wake up to fresh coffee.",
		Price:       89.99,
		Category:    models.CategoryHomeGarden,
		Brand:       "BrewMaster",
		Stock:       45,
		Images:      img("1517668808822-9ebb02f2a0e6"),
		Ratings:     models.Ratings{Average: 4.6, Count: 92},
		IsFeatured:  true,
	},
	{
		Name:        "Vacuum Cleaner Robot",
		Description: "Smart robot vacuum with app control, mapping technology, and automatic charging. Keeps your home spotless.",
		Price:       349.99,
		Category:    models.CategoryHomeGarden,
		Brand:       "CleanBot",
		Stock:       25,
		Images:      img("1558317374-067fb5f30001"),
		Ratings:     models.Ratings{Average: 4.8, Count: 156},
		IsFeatured:  true,
	},
	{
		Name:        "The Complete JavaScript Guide",
		Description: "Comprehensive guide to modern JavaScript programming. From basics to advanced concepts with practical examples.",
		Price:       49.99,
		Category:    models.CategoryBooks,
		Brand:       "TechBooks",
		Stock:       150,
		Images:      img("1544947950-fa07a98d237f"),
		Ratings:     models.Ratings{Average: 4.7, Count: 289},
	},
	{
		Name:        "Kids Building Blocks Set",
		Description: "500-piece colorful building blocks set. Encourages creativity and develops motor skills. Safe for ages 3+.",
		Price:       34.99,
		Category:    models.CategoryToys,
		Brand:       "PlayTime",
		Stock:       120,
		Images:      img("1587654780291-39c9404d746b"),
		Ratings:     models.Ratings{Average: 4.5, Count: 203},
	},
	{
		Name:        "Moisturizing Face Cream",
		Description: "Hydrating face cream with hyaluronic acid and vitamin E. Suitable for all skin types. Dermatologist tested.",
		Price:       29.99,
		Category:    models.CategoryHealthBeauty,
		Brand:       "GlowSkin",
		Stock:       90,
		Images:      img("1556228720-195a672e8a03"),
		Ratings:     models.Ratings{Average: 4.4, Count: 178},
	},
	{
		Name:        "Gaming Mouse RGB",
		Description: "High-precision gaming mouse with customizable RGB lighting, 16000 DPI, and programmable buttons.",
		Price:       59.99,
		Category:    models.CategoryElectronics,
		Brand:       "GameGear",
		Stock:       60,
		Images:      img("1527814050087-3793815479db"),
		Ratings:     models.Ratings{Average: 4.6, Count: 145},
		IsFeatured:  true,
	},
}
