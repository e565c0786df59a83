package constants

// Context keys for validated requests
const (
	// Contact context keys
	ContextKeyContact = "contact"

	// Catalog context keys
	ContextKeyCatalogQuery = "catalogQuery"

	// Auth context keys
	ContextKeyUserUID = "userUID"
)
