package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/credkeeper/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	registerErr error
	loginToken  string
	loginErr    error
	meUser      *client.User
	meErr       error
	pingErr     error

	gotUsername string
	gotPassword string
	gotToken    string
}

func (f *fakeAPI) Register(ctx context.Context, username string, password []byte) (*client.User, error) {
	f.gotUsername = username
	f.gotPassword = string(password)
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &client.User{UserID: "u1", Username: username}, nil
}

func (f *fakeAPI) Login(ctx context.Context, username string, password []byte) (string, error) {
	f.gotUsername = username
	f.gotPassword = string(password)
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) Me(ctx context.Context, token string) (*client.User, error) {
	f.gotToken = token
	return f.meUser, f.meErr
}

func (f *fakeAPI) Ping(ctx context.Context) error {
	return f.pingErr
}

func newTestApp(api AuthAPI) *App {
	return &App{api: api, reader: bufio.NewReader(strings.NewReader(""))}
}

func stubInput(t *testing.T, username string, password []byte) {
	t.Helper()

	oldText, oldPw, oldPrintln := getSimpleText, getPassword, printlnFn
	t.Cleanup(func() {
		getSimpleText, getPassword, printlnFn = oldText, oldPw, oldPrintln
	})

	getSimpleText = func(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return username, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) {
		return password, nil
	}
	printlnFn = func(a ...any) (int, error) { return 0, nil }
}

func TestRegister_CallsAPI(t *testing.T) {
	api := &fakeAPI{}
	app := newTestApp(api)
	stubInput(t, "alice", []byte("pw"))

	require.NoError(t, app.Register(context.Background()))
	assert.Equal(t, "alice", api.gotUsername)
	assert.Equal(t, "pw", api.gotPassword)
}

func TestRegister_PropagatesError(t *testing.T) {
	api := &fakeAPI{registerErr: client.ErrAlreadyExists}
	app := newTestApp(api)
	stubInput(t, "alice", []byte("pw"))

	require.ErrorIs(t, app.Register(context.Background()), client.ErrAlreadyExists)
}

func TestLogin_StoresToken(t *testing.T) {
	api := &fakeAPI{loginToken: "tok123"}
	app := newTestApp(api)
	stubInput(t, "alice", []byte("pw"))

	require.NoError(t, app.Login(context.Background()))
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "tok123", app.token)
	assert.Equal(t, "(alice)", app.getStatus())
}

func TestLogin_FailureLeavesLoggedOut(t *testing.T) {
	api := &fakeAPI{loginErr: client.ErrUnauthorized}
	app := newTestApp(api)
	stubInput(t, "alice", []byte("bad"))

	require.Error(t, app.Login(context.Background()))
	assert.False(t, app.isLoggedIn())
}

func TestWhoami_UsesStoredToken(t *testing.T) {
	api := &fakeAPI{meUser: &client.User{UserID: "u1", Username: "alice"}}
	app := newTestApp(api)
	app.token = "tok123"
	stubInput(t, "", nil)

	require.NoError(t, app.Whoami(context.Background()))
	assert.Equal(t, "tok123", api.gotToken)
}

func TestWhoami_InvalidTokenClearsSession(t *testing.T) {
	api := &fakeAPI{meErr: client.ErrUnauthorized}
	app := newTestApp(api)
	app.token = "expired"
	app.userName = "alice"
	stubInput(t, "", nil)

	require.Error(t, app.Whoami(context.Background()))
	assert.False(t, app.isLoggedIn())
	assert.Empty(t, app.userName)
}

func TestStatus(t *testing.T) {
	stubInput(t, "", nil)

	app := newTestApp(&fakeAPI{})
	require.NoError(t, app.Status(context.Background()))

	app = newTestApp(&fakeAPI{pingErr: errors.New("refused")})
	require.Error(t, app.Status(context.Background()))
}

func TestLogout(t *testing.T) {
	app := newTestApp(&fakeAPI{})
	app.token = "tok"
	app.userName = "alice"
	stubInput(t, "", nil)

	require.NoError(t, app.Logout(context.Background()))
	assert.False(t, app.isLoggedIn())
}
