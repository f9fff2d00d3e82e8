package domain

// PackingTemplateItem is one entry of the default packing checklist.
type PackingTemplateItem struct {
	Name           Bilingual
	Category       PackingCategory
	WeatherRelated bool
}

// DefaultPackingTemplate seeds a trip's packing list the first time it is shown.
var DefaultPackingTemplate = []PackingTemplateItem{
	{Name: Bilingual{En: "T-shirts/Tops", Zh: "T恤/上衣"}, Category: PackingClothing},
	{Name: Bilingual{En: "Shorts/Pants", Zh: "短裤/长裤"}, Category: PackingClothing},
	{Name: Bilingual{En: "Underwear", Zh: "内衣"}, Category: PackingClothing},
	{Name: Bilingual{En: "Socks", Zh: "袜子"}, Category: PackingClothing},
	{Name: Bilingual{En: "Swimwear", Zh: "泳衣"}, Category: PackingClothing},
	{Name: Bilingual{En: "Light jacket", Zh: "轻便外套"}, Category: PackingClothing, WeatherRelated: true},
	{Name: Bilingual{En: "Rain jacket/poncho", Zh: "雨衣/雨披"}, Category: PackingClothing, WeatherRelated: true},
	{Name: Bilingual{En: "Comfortable walking shoes", Zh: "舒适的步行鞋"}, Category: PackingClothing},
	{Name: Bilingual{En: "Sandals/Flip-flops", Zh: "凉鞋/人字拖"}, Category: PackingClothing},
	{Name: Bilingual{En: "Hat/Cap", Zh: "帽子"}, Category: PackingClothing},
	{Name: Bilingual{En: "Sunglasses", Zh: "太阳镜"}, Category: PackingClothing},

	{Name: Bilingual{En: "Toothbrush & toothpaste", Zh: "牙刷和牙膏"}, Category: PackingToiletries},
	{Name: Bilingual{En: "Shampoo & conditioner", Zh: "洗发水和护发素"}, Category: PackingToiletries},
	{Name: Bilingual{En: "Body wash/soap", Zh: "沐浴露/肥皂"}, Category: PackingToiletries},
	{Name: Bilingual{En: "Deodorant", Zh: "除臭剂"}, Category: PackingToiletries},
	{Name: Bilingual{En: "Sunscreen (SPF 50+)", Zh: "防晒霜 (SPF 50+)"}, Category: PackingToiletries},
	{Name: Bilingual{En: "Insect repellent", Zh: "驱蚊液"}, Category: PackingToiletries},
	{Name: Bilingual{En: "Personal medications", Zh: "个人药品"}, Category: PackingToiletries},
	{Name: Bilingual{En: "First aid kit", Zh: "急救包"}, Category: PackingToiletries},

	{Name: Bilingual{En: "Phone & charger", Zh: "手机和充电器"}, Category: PackingElectronics},
	{Name: Bilingual{En: "Power adapter", Zh: "电源转换器"}, Category: PackingElectronics},
	{Name: Bilingual{En: "Camera & memory cards", Zh: "相机和存储卡"}, Category: PackingElectronics},
	{Name: Bilingual{En: "Portable battery pack", Zh: "充电宝"}, Category: PackingElectronics},
	{Name: Bilingual{En: "Headphones", Zh: "耳机"}, Category: PackingElectronics},

	{Name: Bilingual{En: "Passport", Zh: "护照"}, Category: PackingDocuments},
	{Name: Bilingual{En: "Visa documents", Zh: "签证文件"}, Category: PackingDocuments},
	{Name: Bilingual{En: "Flight tickets/boarding passes", Zh: "机票/登机牌"}, Category: PackingDocuments},
	{Name: Bilingual{En: "Hotel confirmations", Zh: "酒店预订确认"}, Category: PackingDocuments},
	{Name: Bilingual{En: "Travel insurance", Zh: "旅行保险"}, Category: PackingDocuments},
	{Name: Bilingual{En: "Driver's license", Zh: "驾照"}, Category: PackingDocuments},
	{Name: Bilingual{En: "Emergency contacts", Zh: "紧急联系人"}, Category: PackingDocuments},

	{Name: Bilingual{En: "Daypack/Backpack", Zh: "日间背包"}, Category: PackingMisc},
	{Name: Bilingual{En: "Water bottle", Zh: "水瓶"}, Category: PackingMisc},
	{Name: Bilingual{En: "Travel pillow", Zh: "旅行枕"}, Category: PackingMisc},
	{Name: Bilingual{En: "Eye mask & earplugs", Zh: "眼罩和耳塞"}, Category: PackingMisc},
	{Name: Bilingual{En: "Books/Kindle", Zh: "书籍/电子书"}, Category: PackingMisc},
	{Name: Bilingual{En: "Snacks", Zh: "零食"}, Category: PackingMisc},
	{Name: Bilingual{En: "Umbrella", Zh: "雨伞"}, Category: PackingMisc, WeatherRelated: true},
	{Name: Bilingual{En: "Seasickness pills", Zh: "晕船药"}, Category: PackingMisc},
	{Name: Bilingual{En: "Cash (local currency)", Zh: "现金 (当地货币)"}, Category: PackingMisc},
	{Name: Bilingual{En: "Credit/debit cards", Zh: "信用卡/借记卡"}, Category: PackingMisc},
}
