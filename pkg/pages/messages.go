package pages

import "github.com/goliatone/go-formflow/pkg/toast"

// Field error messages.
const (
	MsgEmailRequired        = "A valid e-mail is required"
	MsgEmailFormat          = "Type a valid e-mail"
	MsgPasswordRequired     = "Password required"
	MsgNameRequired         = "Name is required"
	MsgNewPasswordRequired  = "New password needed"
	MsgConfirmationRequired = "Password confirmation needed"
	MsgConfirmationMismatch = "Incorrect confirmation"
)

var (
	signInFailure = toast.Error(
		"Authentication error",
		"An error has occured while making login, check the credentials",
	)
	profileSuccess = toast.Success(
		"Profile updated!",
		"Your profile informations where done with success!",
	)
	profileFailure = toast.Error(
		"Update error",
		"An error has occured while updating your profile, check your credentials and try again.",
	)
	avatarSuccess = toast.Success("Avatar changed!")
	avatarFailure = toast.Error(
		"Avatar update error",
		"An error has occured while updating your avatar, try again.",
	)
)
