package pages

import (
	"context"

	"github.com/goliatone/go-formflow/pkg/api"
	"github.com/goliatone/go-formflow/pkg/navigation"
	"github.com/goliatone/go-formflow/pkg/validation"
	"github.com/goliatone/go-formflow/pkg/workflow"
)

// Authenticator establishes a session from credentials.
type Authenticator interface {
	SignIn(ctx context.Context, creds api.Credentials) error
}

// SignInSchema validates the sign-in form.
func SignInSchema() validation.Schema {
	return validation.NewSchema(
		validation.Field("email",
			validation.Required(MsgEmailRequired),
			validation.EmailFormat(MsgEmailFormat),
		),
		validation.Field("password", validation.Required(MsgPasswordRequired)),
	)
}

// SignIn is the sign-in page controller.
type SignIn struct {
	form *workflow.Workflow[struct{}]
}

// NewSignIn builds the sign-in page. A successful sign-in navigates to the
// dashboard without a toast.
func NewSignIn(auth Authenticator, deps Deps) (*SignIn, error) {
	form, err := workflow.New(workflow.Config[struct{}]{
		Name:   "signin",
		Schema: SignInSchema,
		Submit: func(ctx context.Context, input validation.Input) (struct{}, error) {
			return struct{}{}, auth.SignIn(ctx, api.Credentials{
				Email:    input.Get("email"),
				Password: input.Get("password"),
			})
		},
		FailureToast: signInFailure,
		NavigateTo:   navigation.PathDashboard,
	}, deps.options()...)
	if err != nil {
		return nil, err
	}
	return &SignIn{form: form}, nil
}

// Submit runs one sign-in attempt.
func (p *SignIn) Submit(ctx context.Context, input validation.Input) workflow.Outcome[struct{}] {
	return p.form.Submit(ctx, input)
}
