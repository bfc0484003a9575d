package constvars

// Client-facing messages. These are the only strings an API consumer sees on
// failure; dev messages below never leave the process in production.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please re-check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in or your session has expired"
	ErrClientInvalidCredentials            = "Invalid email or password. Please check your credentials and try again"
	ErrClientAccountNotFound               = "No account found with this email. Please register first"
	ErrClientEmailAlreadyExists            = "An account with this email already exists. Please log in instead"
	ErrClientEmailNotVerified              = "Email not verified. Please check your inbox or request a new verification email"
	ErrClientWeakPassword                  = "Password does not meet security requirements. Please use at least 6 characters with a mix of letters, numbers, or symbols"
	ErrClientResetLinkInvalid              = "The password reset link is invalid or has expired. Please request a new one"
	ErrClientInvalidRole                   = "Role must be either 'patient' or 'provider'"
	ErrClientProviderNotFound              = "Provider not found"
	ErrClientRequestNotFound               = "Request not found"
	ErrClientProfileNotFound               = "Profile not found"
	ErrClientOnlyPatientsCreateRequests    = "Only patients can create requests"
	ErrClientOnlyPatientsCancelRequests    = "Only patients can cancel requests"
	ErrClientOnlyPatientsFavorite          = "Only patients can favorite providers"
	ErrClientNotRequestParticipant         = "You don't have permission to update this request"
	ErrClientPatientsCannotSetStatus       = "Patients cannot update request status"
	ErrClientInvalidStatusValue            = "Invalid status value"
	ErrClientNoFieldsToUpdate              = "No valid fields to update"
	ErrClientAlreadyInFavorites            = "Provider is already in favorites"
	ErrClientFailedToAddFavorite           = "Failed to add favorite"
	ErrClientFailedToCreateRequest         = "Failed to create request"
	ErrClientFailedToUpdateRequest         = "Failed to update request"
	ErrClientRegistryUnavailable           = "Failed to connect to NPI Registry API"
	ErrClientRegistryBadGateway            = "NPI Registry API error"
	ErrClientChatNoMessages                = "No messages provided"
	ErrClientChatLastNotUser               = "Last message must be from user"
	ErrClientChatNotConfigured             = "Chat service is not configured"
	ErrClientChatInvalidAPIKey             = "Invalid Gemini API key"
	ErrClientChatEmptyResponse             = "Failed to generate response"
	ErrClientChatGenerationFailed          = "Error generating chat response"
	ErrClientPictureTooLarge               = "Profile picture exceeds the maximum upload size"
)

// Dev messages, logged alongside the wrapped error.
const (
	ErrDevValidationFailed         = "Request validation failed"
	ErrDevCannotParseJSON          = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON        = "Failed to marshal value to JSON"
	ErrDevCannotParseMultipartForm = "Failed to parse multipart form"
	ErrDevCreateHTTPRequest        = "Failed to create HTTP request"
	ErrDevSendHTTPRequest          = "Failed to send HTTP request"
	ErrDevDecodeResponse           = "Failed to decode upstream response body"
	ErrDevAuthTokenMissing         = "Authorization header missing or malformed"
	ErrDevAuthTokenInvalid         = "Bearer token is invalid or expired"
	ErrDevAuthGatewayRejected      = "Auth gateway rejected the operation"
	ErrDevAuthGatewayUnavailable   = "Auth gateway is unreachable"
	ErrDevRoleNotRecognized        = "Role claim is missing or not recognized"
	ErrDevMongoFindDocument        = "Mongo failed to find document"
	ErrDevMongoInsertDocument      = "Mongo failed to insert document"
	ErrDevMongoUpdateDocument      = "Mongo failed to update document"
	ErrDevMongoDeleteDocument      = "Mongo failed to delete document"
	ErrDevMongoIterateDocuments    = "Mongo failed to iterate cursor"
	ErrDevRedisGet                 = "Redis failed to get value"
	ErrDevRedisSet                 = "Redis failed to set value"
	ErrDevRedisDelete              = "Redis failed to delete key"
	ErrDevRegistryTransport        = "NPI registry request failed at transport level"
	ErrDevRegistryStatus           = "NPI registry returned non-success status"
	ErrDevGeminiTransport          = "Gemini request failed at transport level"
	ErrDevGeminiStatus             = "Gemini returned non-success status"
	ErrDevGeminiEmptyCandidate     = "Gemini response contained no usable candidate text"
	ErrDevMinioPutObject           = "MinIO failed to store object"
	ErrDevMinioPresignObject       = "MinIO failed to presign object URL"
	ErrDevAMQPPublish              = "RabbitMQ failed to publish message"
	ErrDevSMTPSend                 = "SMTP failed to send email"
)
