package constvars

const (
	RegisterSuccessMessage           = "Account created successfully"
	LoginSuccessMessage              = "Login successful"
	ResendVerificationSuccessMessage = "If an account with this email exists and is unverified, a new verification email has been sent."
	ForgotPasswordSuccessMessage     = "If an account with this email exists, a password reset email has been sent."
	ResetPasswordSuccessMessage      = "Password updated successfully. You can now log in with your new password."
	CreateRequestSuccessMessage      = "Request created successfully"
	UpdateRequestSuccessMessage      = "Request updated successfully"
	CancelRequestSuccessMessage      = "Request cancelled successfully"
	AddFavoriteSuccessMessage        = "Provider added to favorites"
	RemoveFavoriteSuccessMessage     = "Provider removed from favorites"
	UpdateProfileSuccessMessage      = "Profile updated successfully"
	UploadPictureSuccessMessage      = "Profile picture uploaded successfully"
)
