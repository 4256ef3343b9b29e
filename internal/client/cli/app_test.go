package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrijs2005/mcpcare/internal/client/client"
	"github.com/dmitrijs2005/mcpcare/internal/client/config"
	"github.com/dmitrijs2005/mcpcare/internal/client/models"
	"github.com/dmitrijs2005/mcpcare/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	signupForm models.SignupForm
	signupErr  error

	loginEmail string
	loginPw    string
	loginErr   error
	email      string

	profile    *models.Profile
	profileErr error

	pingErr error
}

func (f *fakeAuth) Signup(_ context.Context, form models.SignupForm) (string, error) {
	f.signupForm = form
	if f.signupErr != nil {
		return "", f.signupErr
	}
	return "User signed up successfully", nil
}

func (f *fakeAuth) Login(_ context.Context, email string, password []byte) error {
	f.loginEmail, f.loginPw = email, string(password)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.email = email
	return nil
}

func (f *fakeAuth) Profile(context.Context) (*models.Profile, error) {
	if f.email == "" {
		return nil, services.ErrNotLoggedIn
	}
	return f.profile, f.profileErr
}

func (f *fakeAuth) Logout()                    { f.email = "" }
func (f *fakeAuth) LoggedInAs() string         { return f.email }
func (f *fakeAuth) Ping(context.Context) error { return f.pingErr }

func newTestApp(t *testing.T, fa *fakeAuth, input string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	var out bytes.Buffer
	return newApp(cfg, fa, strings.NewReader(input), &out), &out
}

func TestSignup_CollectsForm(t *testing.T) {
	stubPasswords(t, "s3cret", "s3cret")
	fa := &fakeAuth{}
	a, out := newTestApp(t, fa, "Asha\n123412341234\nMCP-1\n9876543210\nasha@example.com\n")

	require.NoError(t, a.Signup(context.Background()))

	assert.Equal(t, models.SignupForm{
		Name:            "Asha",
		AadhaarNumber:   "123412341234",
		MCPCardNumber:   "MCP-1",
		MobileNumber:    "9876543210",
		Email:           "asha@example.com",
		Password:        "s3cret",
		ConfirmPassword: "s3cret",
	}, fa.signupForm)
	assert.Contains(t, out.String(), "User signed up successfully")
}

func TestSignup_ServerRejects(t *testing.T) {
	stubPasswords(t, "a", "b")
	fa := &fakeAuth{signupErr: &client.APIError{StatusCode: http.StatusBadRequest, Message: "Passwords do not match"}}
	a, out := newTestApp(t, fa, "n\na\nm\nmo\ne\n")

	require.Error(t, a.Signup(context.Background()))
	assert.Contains(t, out.String(), "Signup failed: Passwords do not match")
}

func TestLogin_ThenProfileAndLogout(t *testing.T) {
	stubPasswords(t, "s3cret")
	fa := &fakeAuth{profile: &models.Profile{ID: "u1", Name: "Asha", Email: "asha@example.com"}}
	a, out := newTestApp(t, fa, "asha@example.com\n")

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "asha@example.com", fa.loginEmail)
	assert.Equal(t, "s3cret", fa.loginPw)
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(asha@example.com) ", a.getStatus())

	require.NoError(t, a.Profile(context.Background()))
	assert.Contains(t, out.String(), "Name:            Asha")

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "", a.getStatus())
}

func TestLogin_Failure(t *testing.T) {
	stubPasswords(t, "nope")
	fa := &fakeAuth{loginErr: &client.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}}
	a, out := newTestApp(t, fa, "asha@example.com\n")

	require.Error(t, a.Login(context.Background()))
	assert.Contains(t, out.String(), "Login failed: Invalid credentials")
	assert.False(t, a.isLoggedIn())
}

func TestProfile_States(t *testing.T) {
	t.Run("not logged in", func(t *testing.T) {
		a, out := newTestApp(t, &fakeAuth{}, "")
		assert.ErrorIs(t, a.Profile(context.Background()), services.ErrNotLoggedIn)
		assert.Contains(t, out.String(), "Please log in first")
	})

	t.Run("vanished account", func(t *testing.T) {
		a, out := newTestApp(t, &fakeAuth{email: "asha@example.com"}, "")
		assert.NoError(t, a.Profile(context.Background()))
		assert.Contains(t, out.String(), "Profile not found")
	})

	t.Run("server error", func(t *testing.T) {
		a, out := newTestApp(t, &fakeAuth{email: "asha@example.com", profileErr: errors.New("boom")}, "")
		assert.Error(t, a.Profile(context.Background()))
		assert.Contains(t, out.String(), "Profile failed: boom")
	})
}

func TestRun_WarnsWhenServerDown(t *testing.T) {
	captureOutput(t)
	a, out := newTestApp(t, &fakeAuth{pingErr: client.ErrUnavailable}, "exit\n")

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Welcome to MCP Care CLI")
	assert.Contains(t, out.String(), "is not reachable")
}
