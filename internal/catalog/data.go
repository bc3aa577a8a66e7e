package catalog

import "carteasy/internal/models"

var products = []models.Product{
	// Electrónica
	{
		ID:            "1",
		Name:          "Premium Wireless Headphones",
		Description:   "Enjoy crystal-clear audio with these premium wireless headphones. Perfect for music lovers and professionals alike.",
		Price:         24999,
		ImageURL:      "https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
		Category:      "electronics",
		InStock:       true,
		Rating:        4.8,
		FeaturedBadge: "Best Seller",
	},
	{
		ID:          "2",
		Name:        "Ultra-Slim Laptop",
		Description: "Powerful performance in an ultra-slim design. Perfect for work and entertainment on the go.",
		Price:       89999,
		ImageURL:    "https://images.unsplash.com/photo-1496181133206-80ce9b88a853",
		Category:    "electronics",
		InStock:     true,
		Rating:      4.5,
	},
	{
		ID:            "3",
		Name:          "Smart Fitness Watch",
		Description:   "Track your fitness goals with this advanced smartwatch. Features heart rate monitoring, GPS, and more.",
		Price:         12999,
		ImageURL:      "https://images.unsplash.com/photo-1579586337278-3befd40fd17a",
		Category:      "wearables",
		InStock:       true,
		Rating:        4.3,
		FeaturedBadge: "New Arrival",
	},

	// Moda
	{
		ID:          "4",
		Name:        "Designer Leather Bag",
		Description: "Handcrafted from premium leather, this designer bag combines style with functionality.",
		Price:       7999,
		ImageURL:    "https://images.unsplash.com/photo-1584917865442-de89df76afd3",
		Category:    "fashion",
		InStock:     true,
		Rating:      4.7,
	},
	{
		ID:          "13",
		Name:        "Premium Silk Dress",
		Description: "Elegant silk dress perfect for special occasions and formal events.",
		Price:       12999,
		ImageURL:    "https://images.unsplash.com/photo-1539008835657-9e8e9680c956",
		Category:    "fashion",
		InStock:     true,
		Rating:      4.6,
	},
	{
		ID:          "14",
		Name:        "Men's Formal Suit",
		Description: "Classic tailored suit that offers both comfort and style for any formal occasion.",
		Price:       24999,
		ImageURL:    "https://images.unsplash.com/photo-1507679799987-c73779587ccf",
		Category:    "fashion",
		InStock:     true,
		Rating:      4.8,
	},
	{
		ID:          "5",
		Name:        "HD Smart TV",
		Description: "Experience stunning visuals with this 4K Ultra HD Smart TV. Stream your favorite content with built-in apps.",
		Price:       45999,
		ImageURL:    "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1",
		Category:    "electronics",
		InStock:     false,
		Rating:      4.6,
	},
	{
		ID:            "6",
		Name:          "Professional DSLR Camera",
		Description:   "Capture perfect moments with this professional-grade DSLR camera. Includes multiple lenses and accessories.",
		Price:         120000,
		ImageURL:      "https://images.unsplash.com/photo-1502920917128-1aa500764cbd",
		Category:      "electronics",
		InStock:       true,
		Rating:        4.9,
		FeaturedBadge: "Premium",
	},

	// Muebles
	{
		ID:          "7",
		Name:        "Ergonomic Office Chair",
		Description: "Work in comfort with this ergonomic office chair, designed to provide optimal support for long hours.",
		Price:       18999,
		ImageURL:    "https://images.unsplash.com/photo-1505843490701-5be5d488e953",
		Category:    "furniture",
		InStock:     true,
		Rating:      4.4,
	},
	{
		ID:          "15",
		Name:        "Modern Coffee Table",
		Description: "Stylish coffee table with minimalist design, perfect for contemporary living rooms.",
		Price:       14999,
		ImageURL:    "https://images.unsplash.com/photo-1567016526105-22da7c13161a",
		Category:    "furniture",
		InStock:     true,
		Rating:      4.3,
	},
	{
		ID:          "8",
		Name:        "Wireless Earbuds",
		Description: "True wireless earbuds with premium sound quality and long battery life.",
		Price:       9999,
		ImageURL:    "https://images.unsplash.com/photo-1606220945770-b5b6c2c55bf1",
		Category:    "electronics",
		InStock:     true,
		Rating:      4.2,
	},

	// Electrodomésticos
	{
		ID:          "9",
		Name:        "Coffee Maker Machine",
		Description: "Brew perfect coffee every morning with this premium coffee maker with multiple brewing options.",
		Price:       15999,
		ImageURL:    "https://images.unsplash.com/photo-1570659124054-1d7639603f7a",
		Category:    "appliances",
		InStock:     true,
		Rating:      4.5,
	},
	{
		ID:            "16",
		Name:          "Air Fryer",
		Description:   "Healthy cooking made easy with this advanced air fryer. Cook crispy foods with little to no oil.",
		Price:         8999,
		ImageURL:      "https://images.unsplash.com/photo-1648170722333-1eee6874f59f",
		Category:      "appliances",
		InStock:       true,
		Rating:        4.7,
		FeaturedBadge: "Hot Deal",
	},
	{
		ID:          "10",
		Name:        "Portable Bluetooth Speaker",
		Description: "Take your music anywhere with this powerful portable Bluetooth speaker with 20-hour battery life.",
		Price:       8999,
		ImageURL:    "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1",
		Category:    "electronics",
		InStock:     true,
		Rating:      4.3,
	},

	// Hogar inteligente
	{
		ID:            "11",
		Name:          "Smart Home Hub",
		Description:   "Control all your smart home devices from one central hub with voice control capabilities.",
		Price:         19999,
		ImageURL:      "https://images.unsplash.com/photo-1558089687-f282ffcbc0d4",
		Category:      "smart home",
		InStock:       true,
		Rating:        4.1,
		FeaturedBadge: "Popular",
	},
	{
		ID:          "17",
		Name:        "Smart Security Camera",
		Description: "Keep your home safe with this HD security camera featuring motion detection and night vision.",
		Price:       6999,
		ImageURL:    "https://images.unsplash.com/photo-1517292987719-0369a794ec0f",
		Category:    "smart home",
		InStock:     true,
		Rating:      4.4,
	},

	// Gaming
	{
		ID:          "12",
		Name:        "Mechanical Gaming Keyboard",
		Description: "Enhance your gaming experience with this responsive mechanical keyboard with customizable RGB lighting.",
		Price:       8499,
		ImageURL:    "https://images.unsplash.com/photo-1595225476474-419632c2e831",
		Category:    "gaming",
		InStock:     true,
		Rating:      4.7,
	},
	{
		ID:            "18",
		Name:          "Gaming Console",
		Description:   "Next-generation gaming console with stunning graphics and fast performance for an immersive gaming experience.",
		Price:         49999,
		ImageURL:      "https://images.unsplash.com/photo-1607853202273-797f1c22a38e",
		Category:      "gaming",
		InStock:       true,
		Rating:        4.9,
		FeaturedBadge: "New Gen",
	},

	// Belleza
	{
		ID:            "19",
		Name:          "Luxury Skincare Set",
		Description:   "Complete premium skincare routine with natural ingredients for radiant, healthy skin.",
		Price:         12999,
		ImageURL:      "https://images.unsplash.com/photo-1598440947619-2c35fc9aa908",
		Category:      "beauty",
		InStock:       true,
		Rating:        4.8,
		FeaturedBadge: "Best Seller",
	},
	{
		ID:          "20",
		Name:        "Professional Hair Dryer",
		Description: "Salon-quality hair dryer with multiple heat settings and ionic technology for quick, frizz-free drying.",
		Price:       5999,
		ImageURL:    "https://images.unsplash.com/photo-1522338242992-e1a54906a8da",
		Category:    "beauty",
		InStock:     true,
		Rating:      4.5,
	},
	{
		ID:          "21",
		Name:        "E-Book Reader",
		Description: "Ultra-thin e-reader with anti-glare screen and weeks of battery life. Holds thousands of books.",
		Price:       11999,
		ImageURL:    "https://images.unsplash.com/photo-1544164559-2e64cde4d1c6",
		Category:    "electronics",
		InStock:     true,
		Rating:      4.6,
	},
}
