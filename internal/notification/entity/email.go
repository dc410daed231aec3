package entity

// EmailResult is the normalized outcome of a single dispatch.
type EmailResult struct {
	Status DeliveryStatus
	// ProviderID is the provider-side message id, set only when Status is sent.
	ProviderID string
}

// ServiceInfo describes the running service for health reporting.
type ServiceInfo struct {
	Service     string
	Environment string
	// Provider is the configured provider name, verbatim.
	Provider string
	// Backend is the provider actually used after fallback.
	Backend string
}
