package variant

import "tradein/models"

// storageCatalog is the fixed storage menu offered per device category.
var storageCatalog = map[string][]string{
	models.DeviceTypePhone:  {"64GB", "128GB", "256GB", "512GB", "1TB"},
	models.DeviceTypeLaptop: {"256GB SSD", "512GB SSD", "1TB SSD", "2TB SSD"},
	models.DeviceTypeTablet: {"64GB", "128GB", "256GB", "512GB", "1TB", "2TB"},
}

// CatalogFor returns a copy of the storage menu for category; unknown categories have none.
func CatalogFor(category string) []string {
	labels := storageCatalog[models.NormalizeDeviceType(category)]
	return append([]string(nil), labels...)
}
