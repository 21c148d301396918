package uischema

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/model"
)

func TestLoadEmbedded(t *testing.T) {
	store, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	for _, id := range []string{"createSession", "updateProfile", "updateAvatar"} {
		if _, ok := store.Operation(id); !ok {
			t.Fatalf("expected operation %q", id)
		}
	}
}

func TestLoadFS_JSONAndYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": {Data: []byte(`{"operations":{"one":{"form":{"title":"One"}}}}`)},
		"b.yaml": {Data: []byte("operations:\n  two:\n    fields:\n      name:\n        label: Name\n")},
		"c.txt":  {Data: []byte("ignored")},
	}

	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	one, ok := store.Operation("one")
	if !ok || one.Form.Title != "One" {
		t.Fatalf("unexpected operation one: %#v", one)
	}
	two, ok := store.Operation("two")
	if !ok || two.Fields["name"].Label != "Name" {
		t.Fatalf("unexpected operation two: %#v", two)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"empty file": {"a.yaml": {Data: []byte("  ")}},
		"duplicate": {
			"a.yaml": {Data: []byte("operations:\n  one: {}\n")},
			"b.yaml": {Data: []byte("operations:\n  one: {}\n")},
		},
		"unknown input": {"a.yaml": {Data: []byte("operations:\n  one:\n    fields:\n      x:\n        input: slider\n")}},
	}
	for name, fsys := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadFS(fsys); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	store, err := LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestDecorate_AppliesConfigAndOrder(t *testing.T) {
	store, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}

	form := model.FormModel{
		OperationID: "updateProfile",
		Fields: []model.Field{
			{Name: "email"},
			{Name: "extra"},
			{Name: "name"},
			{Name: "old_password"},
			{Name: "password"},
			{Name: "password_confirmation"},
		},
	}

	decorated := store.Decorate(form)

	want := []string{"name", "email", "old_password", "password", "password_confirmation", "extra"}
	if diff := cmp.Diff(want, decorated.FieldNames()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if decorated.Title != "My profile" || decorated.Submit != "Confirm changes" {
		t.Fatalf("unexpected copy %q / %q", decorated.Title, decorated.Submit)
	}
	oldPassword, _ := decorated.Field("old_password")
	if oldPassword.Input != model.InputPassword {
		t.Fatalf("expected password input, got %q", oldPassword.Input)
	}
	if form.Fields[0].Name != "email" {
		t.Fatalf("decorate must not mutate the input form")
	}
}

func TestDecorate_UnknownOperation(t *testing.T) {
	store, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	form := model.FormModel{OperationID: "other", Fields: []model.Field{{Name: "b"}, {Name: "a"}}}
	if diff := cmp.Diff(form, store.Decorate(form)); diff != "" {
		t.Fatalf("expected form untouched (-want +got):\n%s", diff)
	}
}
