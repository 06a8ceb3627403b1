package registry

import (
	"github.com/shopspring/decimal"

	"github.com/anilkedia87/gstbill/internal/hsn/domain"
)

func entry(code, description string, rate int64, keywords ...string) domain.Entry {
	return domain.Entry{
		Code:          code,
		Description:   description,
		SuggestedRate: decimal.NewFromInt(rate),
		Keywords:      keywords,
	}
}

// builtinEntries is the compiled-in HSN/SAC master list. Rates are the
// typical slab for the heading, advisory only.
var builtinEntries = []domain.Entry{
	// Food items
	entry("1001", "Wheat and meslin", 0, "wheat", "meslin", "grain"),
	entry("1006", "Rice", 5, "rice", "basmati", "paddy"),
	entry("1701", "Cane or beet sugar", 5, "sugar", "cane", "beet", "sweetener"),
	entry("1704", "Sugar confectionery", 18, "candy", "chocolate", "confectionery", "sweet"),
	entry("0713", "Dried leguminous vegetables", 0, "dal", "pulse", "lentil", "chickpea", "bean", "gram"),
	entry("0901", "Coffee", 5, "coffee", "beans", "instant coffee"),
	entry("0902", "Tea", 5, "tea", "chai", "green tea", "black tea"),
	entry("1207", "Oil seeds", 5, "seeds", "oil seeds", "mustard", "sesame"),

	// Textiles and garments
	entry("5208", "Woven fabrics of cotton", 5, "cotton", "fabric", "cloth", "textile"),
	entry("6109", "T-shirts, singlets and other vests", 12, "tshirt", "t-shirt", "shirt", "vest", "singlet", "top", "blouse"),
	entry("6203", "Men's or boys' suits, ensembles", 12, "suit", "blazer", "jacket", "trouser", "pant", "formal wear"),
	entry("6204", "Women's or girls' suits, ensembles", 12, "dress", "skirt", "kurti", "saree", "ladies wear", "women wear"),
	entry("6115", "Pantyhose, tights, stockings, socks", 12, "socks", "stocking", "pantyhose", "hosiery"),
	entry("6402", "Footwear with outer soles", 18, "shoes", "sandal", "footwear", "boot", "slipper", "chappal"),

	// Electronics and computers
	entry("8471", "Automatic data processing machines", 18, "computer", "laptop", "desktop", "pc", "processor", "cpu"),
	entry("8517", "Telephone sets, mobile phones", 18, "mobile", "phone", "smartphone", "telephone", "cell phone"),
	entry("8528", "Monitors and projectors", 18, "monitor", "screen", "display", "projector", "tv", "television"),
	entry("8504", "Electrical transformers", 18, "transformer", "electrical", "power supply", "adapter"),
	entry("8519", "Sound recording apparatus", 18, "speaker", "audio", "sound", "music system", "headphone"),
	entry("8473", "Parts of machines of heading 8471", 18, "keyboard", "mouse", "computer parts", "accessories"),

	// Automobiles
	entry("8703", "Motor cars and other motor vehicles", 28, "car", "automobile", "vehicle", "sedan", "hatchback"),
	entry("8711", "Motorcycles", 28, "motorcycle", "bike", "scooter", "two wheeler"),
	entry("8708", "Parts and accessories of motor vehicles", 28, "auto parts", "spare parts", "car parts", "vehicle parts"),

	// Chemicals and cosmetics
	entry("2915", "Saturated acyclic monocarboxylic acids", 18, "chemical", "acid", "industrial chemical"),
	entry("3004", "Medicaments", 12, "medicine", "drug", "pharmaceutical", "tablet", "capsule", "syrup"),
	entry("3307", "Perfumes and cosmetics", 18, "perfume", "cosmetic", "makeup", "beauty", "cream", "lotion"),
	entry("3401", "Soap; organic surface-active products", 18, "soap", "detergent", "shampoo", "cleaning"),

	// Furniture and household
	entry("9401", "Seats", 18, "chair", "seat", "sofa", "bench", "stool"),
	entry("9403", "Other furniture", 18, "furniture", "table", "desk", "cabinet", "wardrobe", "bed"),
	entry("7013", "Glassware", 18, "glass", "glassware", "tumbler", "bottle", "jar"),
	entry("6912", "Ceramic tableware", 18, "ceramic", "plate", "cup", "bowl", "pottery"),

	// Books and stationery
	entry("4901", "Printed books, brochures", 5, "book", "novel", "textbook", "magazine", "publication"),
	entry("4802", "Uncoated paper", 12, "paper", "sheet", "notebook", "copy"),
	entry("9608", "Ball point pens", 18, "pen", "pencil", "marker", "stationery"),

	// Services (SAC)
	entry("998341", "Information technology software services", 18, "software", "development", "programming", "app", "website"),
	entry("998342", "Information technology consulting services", 18, "consulting", "it service", "technical", "support"),
	entry("998343", "Information technology support services", 18, "support", "maintenance", "repair", "troubleshooting"),
	entry("997213", "Legal services", 18, "legal", "lawyer", "attorney", "court", "law"),
	entry("997212", "Accounting and auditing services", 18, "accounting", "audit", "tax", "financial", "bookkeeping"),
	entry("996511", "Transportation of goods by road", 5, "transport", "delivery", "shipping", "logistics", "courier"),
	entry("997311", "Architectural services", 18, "architecture", "design", "planning", "construction design"),
	entry("998313", "Market research and public opinion polling", 18, "research", "survey", "marketing", "analysis"),

	// Jewelry and precious metals
	entry("7113", "Articles of jewelry", 3, "jewelry", "gold", "silver", "ornament", "jewellery"),
	entry("7108", "Gold", 3, "gold", "precious metal"),

	// Toys and games
	entry("9503", "Toys", 18, "toy", "game", "doll", "puzzle", "plaything"),

	// General fallback
	entry("9999", "General/Other items", 18, "other", "general", "miscellaneous"),
}
