package pages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-formflow/pkg/api"
	"github.com/goliatone/go-formflow/pkg/navigation"
	"github.com/goliatone/go-formflow/pkg/validation"
	"github.com/goliatone/go-formflow/pkg/workflow"
)

// ProfileAPI performs the profile operations.
type ProfileAPI interface {
	UpdateProfile(ctx context.Context, payload api.Payload) (api.User, error)
	UploadAvatar(ctx context.Context, filename string, file io.Reader) (api.User, error)
}

// UserSession exposes the signed-in user for reading and replacement.
type UserSession interface {
	User() (api.User, bool)
	UpdateUser(user api.User) error
}

// AvatarField is the input key holding the avatar file path.
const AvatarField = "avatar"

// ProfileSchema validates the profile form. Password fields are required
// only when old_password is filled in.
func ProfileSchema() validation.Schema {
	return validation.NewSchema(
		validation.Field("name", validation.Required(MsgNameRequired)),
		validation.Field("email",
			validation.Required(MsgEmailRequired),
			validation.EmailFormat(MsgEmailFormat),
		),
		validation.Field("password", validation.RequiredIf("old_password", MsgNewPasswordRequired)),
		validation.Field("password_confirmation",
			validation.RequiredIf("old_password", MsgConfirmationRequired),
			validation.EqualsField("password", MsgConfirmationMismatch),
		),
	)
}

// ProfilePayload shapes the update request. The password keys are sent
// only when old_password is non-empty.
func ProfilePayload(input validation.Input) api.Payload {
	payload := api.Payload{
		"name":  input.Get("name"),
		"email": input.Get("email"),
	}
	if input.Get("old_password") != "" {
		payload["old_password"] = input.Get("old_password")
		payload["password"] = input.Get("password")
		payload["password_confirmation"] = input.Get("password_confirmation")
	}
	return payload
}

// Profile is the profile page controller.
type Profile struct {
	session UserSession
	form    *workflow.Workflow[api.User]
	avatar  *workflow.Workflow[api.User]
}

// NewProfile builds the profile page.
func NewProfile(client ProfileAPI, session UserSession, deps Deps) (*Profile, error) {
	if client == nil || session == nil {
		return nil, errors.New("pages: profile needs an api client and a session")
	}
	replaceUser := func(_ context.Context, user api.User) error {
		return session.UpdateUser(user)
	}

	success := profileSuccess
	form, err := workflow.New(workflow.Config[api.User]{
		Name:   "profile",
		Schema: ProfileSchema,
		Submit: func(ctx context.Context, input validation.Input) (api.User, error) {
			return client.UpdateProfile(ctx, ProfilePayload(input))
		},
		OnSuccess:    replaceUser,
		SuccessToast: &success,
		FailureToast: profileFailure,
		NavigateTo:   navigation.PathDashboard,
	}, deps.options()...)
	if err != nil {
		return nil, err
	}

	// The avatar flow is independent of the form: no field errors, no
	// navigation.
	avatarToast := avatarSuccess
	avatar, err := workflow.New(workflow.Config[api.User]{
		Name:   "avatar",
		Schema: func() validation.Schema { return validation.NewSchema() },
		Submit: func(ctx context.Context, input validation.Input) (api.User, error) {
			return uploadAvatarFile(ctx, client, input.Get(AvatarField))
		},
		OnSuccess:    replaceUser,
		SuccessToast: &avatarToast,
		FailureToast: avatarFailure,
	}, workflow.WithNotifier(deps.Notifier), workflow.WithLogger(deps.logger()))
	if err != nil {
		return nil, err
	}

	return &Profile{session: session, form: form, avatar: avatar}, nil
}

// Defaults prefills the form with the current user's name and email.
func (p *Profile) Defaults() validation.Input {
	user, ok := p.session.User()
	if !ok {
		return validation.Input{}
	}
	return validation.Input{"name": user.Name, "email": user.Email}
}

// Submit runs one profile update attempt.
func (p *Profile) Submit(ctx context.Context, input validation.Input) workflow.Outcome[api.User] {
	return p.form.Submit(ctx, input)
}

// UploadAvatar sends the file at path as the new avatar.
func (p *Profile) UploadAvatar(ctx context.Context, path string) workflow.Outcome[api.User] {
	return p.avatar.Submit(ctx, validation.Input{AvatarField: path})
}

func uploadAvatarFile(ctx context.Context, client ProfileAPI, path string) (api.User, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return api.User{}, errors.New("pages: no avatar file selected")
	}
	file, err := os.Open(path)
	if err != nil {
		return api.User{}, fmt.Errorf("pages: open avatar: %w", err)
	}
	defer file.Close()
	return client.UploadAvatar(ctx, filepath.Base(path), file)
}
