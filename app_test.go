package formflow_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow"
	"github.com/goliatone/go-formflow/pkg/api"
	"github.com/goliatone/go-formflow/pkg/renderers/tui"
	"github.com/goliatone/go-formflow/pkg/session"
)

type scriptedDriver struct {
	inputs    []string
	passwords []string
	confirms  []bool
	infos     []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", errors.New("unexpected input prompt: " + cfg.Message)
	}
	v := d.inputs[0]
	d.inputs = d.inputs[1:]
	return v, nil
}

func (d *scriptedDriver) Password(_ context.Context, cfg tui.InputConfig) (string, error) {
	if len(d.passwords) == 0 {
		return "", errors.New("unexpected password prompt: " + cfg.Message)
	}
	v := d.passwords[0]
	d.passwords = d.passwords[1:]
	return v, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg tui.ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, errors.New("unexpected confirm prompt: " + cfg.Message)
	}
	v := d.confirms[0]
	d.confirms = d.confirms[1:]
	return v, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

type bookingServer struct {
	mu       sync.Mutex
	user     api.User
	profiles []map[string]string
	auths    []string
}

func (b *bookingServer) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /sessions", func(w http.ResponseWriter, r *http.Request) {
		var creds api.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message":"invalid"}`)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		b.user = api.User{ID: "u1", Name: "Ada", Email: creds.Email, AvatarURL: "http://cdn/ada.png"}
		_ = json.NewEncoder(w).Encode(api.Auth{User: b.user, Token: "tok"})
	})
	mux.HandleFunc("PUT /profile", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		b.mu.Lock()
		defer b.mu.Unlock()
		b.auths = append(b.auths, r.Header.Get("Authorization"))
		b.profiles = append(b.profiles, payload)
		b.user.Name = payload["name"]
		b.user.Email = payload["email"]
		_ = json.NewEncoder(w).Encode(b.user)
	})
	mux.HandleFunc("PATCH /users/avatar", func(w http.ResponseWriter, r *http.Request) {
		_, header, err := r.FormFile("avatar")
		if err != nil {
			t.Errorf("avatar form: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		b.user.AvatarURL = "http://cdn/" + header.Filename
		_ = json.NewEncoder(w).Encode(b.user)
	})
	return mux
}

func newApp(t *testing.T, driver *scriptedDriver) (*formflow.App, *bookingServer, *bytes.Buffer) {
	t.Helper()
	backend := &bookingServer{}
	server := httptest.NewServer(backend.handler(t))
	t.Cleanup(server.Close)

	cfg := &formflow.Config{
		APIURL:      server.URL,
		SessionFile: filepath.Join(t.TempDir(), "session.json"),
		HTTPTimeout: 5 * time.Second,
		LogLevel:    "error",
		LogFormat:   "text",
	}
	var out bytes.Buffer
	app, err := formflow.NewApp(context.Background(), cfg,
		formflow.WithPromptDriver(driver),
		formflow.WithOutput(&out),
		formflow.WithHTTPClient(server.Client()),
	)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app, backend, &out
}

func signIn(t *testing.T, app *formflow.App) {
	t.Helper()
	if err := app.Session.SignIn(context.Background(), api.Credentials{Email: "a@b.com", Password: "secret"}); err != nil {
		t.Fatalf("sign in: %v", err)
	}
}

func TestApp_SignInThenDashboard(t *testing.T) {
	driver := &scriptedDriver{
		inputs:    []string{"not-an-email", "a@b.com"},
		passwords: []string{"secret", "secret"},
	}
	app, _, out := newApp(t, driver)

	if err := app.Run(context.Background(), "signin", nil); err != nil {
		t.Fatalf("run signin: %v", err)
	}

	if !app.Session.Authenticated() {
		t.Fatalf("expected session after sign in")
	}
	if !strings.Contains(out.String(), "Welcome, Ada") {
		t.Fatalf("expected dashboard greeting, got %q", out.String())
	}
	if diff := cmp.Diff([]string{"/", "/dashboard"}, app.Router.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
	wantInfos := []string{"› Make your login", "✗ E-mail: Type a valid e-mail", "› Make your login"}
	if diff := cmp.Diff(wantInfos, driver.infos); diff != "" {
		t.Fatalf("prompt output mismatch (-want +got):\n%s", diff)
	}
}

func TestApp_SignInFailureAsksToRetry(t *testing.T) {
	driver := &scriptedDriver{
		inputs:    []string{"a@b.com"},
		passwords: []string{"wrong"},
		confirms:  []bool{false},
	}
	app, _, out := newApp(t, driver)

	if err := app.Run(context.Background(), "signin", nil); err != nil {
		t.Fatalf("run signin: %v", err)
	}
	if app.Session.Authenticated() {
		t.Fatalf("expected no session")
	}
	want := "✗ Authentication error: An error has occured while making login, check the credentials\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestApp_ProfileUpdate(t *testing.T) {
	driver := &scriptedDriver{
		inputs:    []string{"Grace", "g@b.com"},
		passwords: []string{"", "", ""},
	}
	app, backend, out := newApp(t, driver)
	signIn(t, app)

	if err := app.Run(context.Background(), "profile", nil); err != nil {
		t.Fatalf("run profile: %v", err)
	}

	if diff := cmp.Diff([]map[string]string{{"name": "Grace", "email": "g@b.com"}}, backend.profiles); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Bearer tok"}, backend.auths); diff != "" {
		t.Fatalf("auth header mismatch (-want +got):\n%s", diff)
	}
	user, _ := app.Session.User()
	if user.Name != "Grace" {
		t.Fatalf("expected session user replaced, got %+v", user)
	}
	got := out.String()
	if !strings.Contains(got, "✔ Profile updated!: Your profile informations where done with success!") {
		t.Fatalf("expected success toast, got %q", got)
	}
	if !strings.Contains(got, "Welcome, Grace") {
		t.Fatalf("expected dashboard after update, got %q", got)
	}
}

func TestApp_ProfileRequiresSession(t *testing.T) {
	driver := &scriptedDriver{
		inputs:    []string{"a@b.com"},
		passwords: []string{"secret"},
	}
	app, _, _ := newApp(t, driver)

	if err := app.Run(context.Background(), "profile", nil); err != nil {
		t.Fatalf("run profile: %v", err)
	}
	if diff := cmp.Diff([]string{"/profile", "/", "/dashboard"}, app.Router.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestApp_AvatarUpload(t *testing.T) {
	app, _, out := newApp(t, &scriptedDriver{})
	signIn(t, app)

	path := filepath.Join(t.TempDir(), "me.png")
	if err := os.WriteFile(path, []byte("PNG"), 0o600); err != nil {
		t.Fatalf("write avatar: %v", err)
	}
	if err := app.Run(context.Background(), "avatar", []string{path}); err != nil {
		t.Fatalf("run avatar: %v", err)
	}

	user, _ := app.Session.User()
	if user.AvatarURL != "http://cdn/me.png" {
		t.Fatalf("expected avatar replaced, got %+v", user)
	}
	if !strings.Contains(out.String(), "✔ Avatar changed!") {
		t.Fatalf("expected avatar toast, got %q", out.String())
	}
}

func TestApp_AvatarRequiresSession(t *testing.T) {
	app, _, _ := newApp(t, &scriptedDriver{})
	if err := app.Run(context.Background(), "avatar", []string{"x.png"}); !errors.Is(err, session.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestApp_SignOut(t *testing.T) {
	app, _, _ := newApp(t, &scriptedDriver{})
	signIn(t, app)

	if err := app.Run(context.Background(), "signout", nil); err != nil {
		t.Fatalf("run signout: %v", err)
	}
	if app.Session.Authenticated() {
		t.Fatalf("expected signed out")
	}
}

func TestApp_UnknownCommand(t *testing.T) {
	app, _, _ := newApp(t, &scriptedDriver{})
	if err := app.Run(context.Background(), "launch", nil); !errors.Is(err, formflow.ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}
