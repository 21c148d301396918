package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/model"
	"github.com/goliatone/go-formflow/pkg/openapi"
)

func TestBuild_FromOperation(t *testing.T) {
	op := openapi.MustNewOperation("createSession", "POST", "/sessions", openapi.Schema{
		Type:     "object",
		Required: []string{"email", "password"},
		Properties: map[string]openapi.Schema{
			"password": {Type: "string", Format: "password", Title: "Password"},
			"email":    {Type: "string", Format: "email", Title: "E-mail"},
		},
	})
	op.Summary = "Sign in"

	form, err := model.Build(op)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := model.FormModel{
		OperationID: "createSession",
		Endpoint:    "/sessions",
		Method:      "POST",
		Title:       "Sign in",
		Fields: []model.Field{
			{Name: "email", Type: model.FieldTypeString, Format: "email", Required: true, Label: "E-mail", Input: model.InputText},
			{Name: "password", Type: model.FieldTypeString, Format: "password", Required: true, Label: "Password", Input: model.InputPassword},
		},
	}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_BinaryFieldUsesFileInput(t *testing.T) {
	op := openapi.MustNewOperation("updateAvatar", "PATCH", "/users/avatar", openapi.Schema{
		Type:       "object",
		Properties: map[string]openapi.Schema{"avatar": {Type: "string", Format: "binary"}},
	})

	form, err := model.Build(op)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	field, ok := form.Field("avatar")
	if !ok {
		t.Fatalf("expected avatar field")
	}
	if field.Input != model.InputFile {
		t.Fatalf("expected file input, got %q", field.Input)
	}
	if field.DisplayLabel() != "avatar" {
		t.Fatalf("expected label fallback to name, got %q", field.DisplayLabel())
	}
}

func TestBuild_RequiresProperties(t *testing.T) {
	op := openapi.MustNewOperation("ping", "GET", "/ping", openapi.Schema{})
	if _, err := model.Build(op); err == nil {
		t.Fatalf("expected error for operation without body")
	}
}
