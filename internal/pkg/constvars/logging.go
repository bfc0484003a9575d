package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingUserIDKey        = "user_id"
	LoggingRoleKey          = "role"
	LoggingProviderIDKey    = "provider_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingRequestKey       = "request"
	LoggingNPIKey           = "npi"
	LoggingResultCountKey   = "result_count"
	LoggingResponseCountKey = "response_count"
	LoggingQueueKey         = "queue"
)
