package models

// Categories
const (
	CategoryUncategorized  = "Uncategorized"
	CategoryFoodDining     = "Food & Dining"
	CategoryTransportation = "Transportation"
	CategoryShopping       = "Shopping"
	CategoryUtilities      = "Utilities"
	CategoryHealthcare     = "Healthcare"
)

// MonthKeyUnknown is the sentinel bucket for transactions whose date could
// not be normalized. It always sorts after every real YYYY-MM key.
const MonthKeyUnknown = "Unknown"

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
