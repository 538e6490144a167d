package constants

// Route provider names accepted in route.provider
const (
	RouteProviderOSRM = "osrm"
	RouteProviderFile = "file"
)

// Messages shown while a readiness gate is still closed
const (
	LoadingDirections = "Loading directions..."
	LoadingDocument   = "Loading document..."
)
