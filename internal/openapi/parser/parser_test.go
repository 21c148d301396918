package parser

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-formflow/pkg/openapi"
)

func TestOperations_BookingContract(t *testing.T) {
	doc, err := pkgopenapi.BookingDocument()
	if err != nil {
		t.Fatalf("booking document: %v", err)
	}

	ops, err := New(pkgopenapi.NewParserOptions()).Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("operations: %v", err)
	}

	type endpoint struct {
		Method      string
		Path        string
		ContentType string
	}
	got := make(map[string]endpoint, len(ops))
	for id, op := range ops {
		got[id] = endpoint{Method: op.Method, Path: op.Path, ContentType: op.ContentType}
	}
	want := map[string]endpoint{
		pkgopenapi.OperationCreateSession: {Method: "POST", Path: "/sessions", ContentType: "application/json"},
		pkgopenapi.OperationUpdateProfile: {Method: "PUT", Path: "/profile", ContentType: "application/json"},
		pkgopenapi.OperationUpdateAvatar:  {Method: "PATCH", Path: "/users/avatar", ContentType: "multipart/form-data"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}

	profile := ops[pkgopenapi.OperationUpdateProfile].RequestBody
	if diff := cmp.Diff([]string{"name", "email"}, profile.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	if got := profile.Properties["email"].Format; got != "email" {
		t.Fatalf("expected email format, got %q", got)
	}
	if got := profile.Properties["password_confirmation"].Title; got != "Password confirmation" {
		t.Fatalf("unexpected title %q", got)
	}
}

func TestOperations_RejectsEmptyDocument(t *testing.T) {
	const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Empty", "version": "1.0.0" },
  "paths": {}
}`
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("empty.json"), []byte(document))

	if _, err := New(pkgopenapi.NewParserOptions()).Operations(context.Background(), doc); err == nil {
		t.Fatalf("expected error for document without paths")
	}

	ops, err := New(pkgopenapi.NewParserOptions(pkgopenapi.WithPartialDocuments(true))).Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("partial document: %v", err)
	}
	if len(ops) != 0 {
		t.Fatalf("expected no operations, got %d", len(ops))
	}
}

func TestOperations_DerivesMissingOperationID(t *testing.T) {
	const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Anonymous", "version": "1.0.0" },
  "paths": {
    "/ping": {
      "get": { "responses": { "204": { "description": "ok" } } }
    }
  }
}`
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("ping.json"), []byte(document))

	ops, err := New(pkgopenapi.NewParserOptions()).Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	if _, ok := ops["get:/ping"]; !ok {
		t.Fatalf("expected derived operation id, got %v", ops)
	}
}

func TestOperations_HonoursCancelledContext(t *testing.T) {
	doc, err := pkgopenapi.BookingDocument()
	if err != nil {
		t.Fatalf("booking document: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(pkgopenapi.NewParserOptions()).Operations(ctx, doc); err == nil {
		t.Fatalf("expected context error")
	}
}
