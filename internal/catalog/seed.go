package catalog

// DefaultProducts is the built-in catalog used when nothing usable is
// persisted. One product per category.
func DefaultProducts() []Product {
	return []Product{
		{ID: 1, Name: "RTX 4070 Ti", Price: 3_200_000, Stock: 5, Discount: 0, Img: "/img/rtx-4070-ti.webp", Desc: "12GB GDDR6X graphics card", Category: "graphics-cards"},
		{ID: 2, Name: "Ryzen 7 7800X3D", Price: 1_850_000, Stock: 8, Discount: 5, Img: "/img/ryzen-7-7800x3d.webp", Desc: "8-core AM5 processor with 3D V-Cache", Category: "processors"},
		{ID: 3, Name: "MAG B650 Tomahawk", Price: 980_000, Stock: 6, Discount: 0, Img: "/img/b650-tomahawk.webp", Desc: "ATX AM5 motherboard", Category: "motherboards"},
		{ID: 4, Name: "Vengeance 32GB DDR5 6000", Price: 620_000, Stock: 12, Discount: 10, Img: "/img/vengeance-ddr5.webp", Desc: "2x16GB CL30 kit", Category: "memory"},
		{ID: 5, Name: "980 PRO 1TB NVMe", Price: 520_000, Stock: 15, Discount: 0, Img: "/img/980-pro-1tb.webp", Desc: "PCIe 4.0 M.2 SSD", Category: "storage"},
		{ID: 6, Name: "K70 RGB Mechanical Keyboard", Price: 450_000, Stock: 10, Discount: 0, Img: "/img/k70-rgb.webp", Desc: "Cherry MX Red switches", Category: "peripherals"},
		{ID: 7, Name: "Odyssey G5 27\"", Price: 1_450_000, Stock: 4, Discount: 8, Img: "/img/odyssey-g5.webp", Desc: "1440p 165Hz curved monitor", Category: "monitors"},
	}
}
