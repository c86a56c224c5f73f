package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrforge/internal/encode"
	"qrforge/internal/notify"
	"qrforge/internal/repositories/accounts"
	"qrforge/internal/repositories/items"
	"qrforge/internal/repositories/sessions"
	"qrforge/internal/services"
	"qrforge/internal/storage"
)

// ------------ helpers ------------

// captureNotifier records notifications for assertions.
type captureNotifier struct {
	notifications []notify.Notification
}

func (c *captureNotifier) Notify(n notify.Notification) {
	c.notifications = append(c.notifications, n)
}

func (c *captureNotifier) last() notify.Notification {
	if len(c.notifications) == 0 {
		return notify.Notification{}
	}
	return c.notifications[len(c.notifications)-1]
}

// stubInputs replaces the interactive seams with queued canned answers.
// Text answers and password answers are consumed independently, in order.
func stubInputs(t *testing.T, texts []string, passwords []string, confirm bool) {
	t.Helper()
	origST, origGP, origGC := getSimpleText, getPassword, getConfirm
	t.Cleanup(func() {
		getSimpleText, getPassword, getConfirm = origST, origGP, origGC
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		answer := texts[0]
		texts = texts[1:]
		return answer, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		answer := passwords[0]
		passwords = passwords[1:]
		return []byte(answer), nil
	}
	getConfirm = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		return confirm, nil
	}
}

func quietPrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

// newTestApp wires a full service stack over an in-memory store.
func newTestApp(t *testing.T) (*App, *captureNotifier) {
	t.Helper()
	kv := storage.NewMemoryKV()
	auth := services.NewAuthService(accounts.NewBlobRepository(kv))
	itemSvc := services.NewItemService(items.NewBlobRepository(kv))
	sessionSvc := services.NewSessionService(auth, sessions.NewTokenRepository(kv), itemSvc)
	codeSvc := services.NewCodeService(encode.NewLibraryEncoder(), itemSvc, t.TempDir())

	notifier := &captureNotifier{}
	return &App{
		auth:     auth,
		sessions: sessionSvc,
		items:    itemSvc,
		codes:    codeSvc,
		notifier: notifier,
	}, notifier
}

// ------------ tests ------------

func TestRegisterThenLogin(t *testing.T) {
	app, notifier := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, []string{"alice"}, []string{"secret", "secret"}, false)
	require.NoError(t, app.Register(ctx))
	assert.Equal(t, notify.SeveritySuccess, notifier.last().Severity)
	assert.False(t, app.isLoggedIn(), "registration does not log in")

	stubInputs(t, []string{"alice"}, []string{"secret"}, false)
	require.NoError(t, app.Login(ctx))
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "(alice)", app.getStatus())
}

func TestRegister_MismatchNotifiesError(t *testing.T) {
	app, notifier := newTestApp(t)

	stubInputs(t, []string{"alice"}, []string{"secret", "different"}, false)
	err := app.Register(context.Background())
	require.Error(t, err)
	assert.Equal(t, notify.SeverityError, notifier.last().Severity)
	assert.Equal(t, "Registration Failed", notifier.last().Title)
}

func TestLogin_WrongPasswordNotifiesError(t *testing.T) {
	app, notifier := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, []string{"alice"}, []string{"secret", "secret"}, false)
	require.NoError(t, app.Register(ctx))

	stubInputs(t, []string{"alice"}, []string{"wrong"}, false)
	err := app.Login(ctx)
	require.Error(t, err)
	assert.False(t, app.isLoggedIn())
	assert.Equal(t, "Login Failed", notifier.last().Title)
}

func TestLogout(t *testing.T) {
	app, notifier := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, []string{"alice"}, []string{"secret", "secret"}, false)
	require.NoError(t, app.Register(ctx))
	stubInputs(t, []string{"alice"}, []string{"secret"}, false)
	require.NoError(t, app.Login(ctx))

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn())
	assert.Equal(t, notify.SeverityInfo, notifier.last().Severity)

	_, err := app.sessions.Restore(ctx)
	assert.Error(t, err, "persisted session must be gone")
}

func TestRename_UpdatesSessionAndItems(t *testing.T) {
	app, notifier := newTestApp(t)
	ctx := context.Background()
	quietPrintln(t)

	stubInputs(t, []string{"alice"}, []string{"secret", "secret"}, false)
	require.NoError(t, app.Register(ctx))
	stubInputs(t, []string{"alice"}, []string{"secret"}, false)
	require.NoError(t, app.Login(ctx))

	// generate and save one code under the old name
	stubInputs(t, []string{"qr", "hello", "", ""}, nil, false)
	require.NoError(t, app.Generate(ctx))
	stubInputs(t, []string{"greeting", "png"}, nil, false)
	require.NoError(t, app.Save(ctx))

	stubInputs(t, []string{"alicia"}, []string{"secret"}, false)
	require.NoError(t, app.Rename(ctx))
	assert.Equal(t, "(alicia)", app.getStatus())
	assert.Equal(t, "Username Updated", notifier.last().Title)

	moved, err := app.items.ListByOwner(ctx, "alicia")
	require.NoError(t, err)
	assert.Len(t, moved, 1)
}

func TestGenerateAndSave(t *testing.T) {
	app, notifier := newTestApp(t)
	ctx := context.Background()
	quietPrintln(t)

	stubInputs(t, []string{"alice"}, []string{"secret", "secret"}, false)
	require.NoError(t, app.Register(ctx))
	stubInputs(t, []string{"alice"}, []string{"secret"}, false)
	require.NoError(t, app.Login(ctx))

	// defaults: qr, 200 px, black
	stubInputs(t, []string{"", "HELLO", "", ""}, nil, false)
	require.NoError(t, app.Generate(ctx))
	assert.Equal(t, "Code Generated", notifier.last().Title)

	stubInputs(t, []string{"greeting", ""}, nil, false)
	require.NoError(t, app.Save(ctx))
	assert.Equal(t, "Code Saved", notifier.last().Title)

	list, err := app.items.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "greeting", list[0].FileBaseName)
}

func TestGenerate_EmptyTextNotifiesError(t *testing.T) {
	app, notifier := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, []string{"alice"}, []string{"secret", "secret"}, false)
	require.NoError(t, app.Register(ctx))
	stubInputs(t, []string{"alice"}, []string{"secret"}, false)
	require.NoError(t, app.Login(ctx))

	stubInputs(t, []string{"qr", "", "", ""}, nil, false)
	err := app.Generate(ctx)
	require.Error(t, err)
	assert.Equal(t, "Generation Failed", notifier.last().Title)
	assert.Nil(t, app.codes.Current())
}

func TestSave_WithoutGenerateNotifiesError(t *testing.T) {
	app, notifier := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, []string{"alice"}, []string{"secret", "secret"}, false)
	require.NoError(t, app.Register(ctx))
	stubInputs(t, []string{"alice"}, []string{"secret"}, false)
	require.NoError(t, app.Login(ctx))

	stubInputs(t, []string{"name", "png"}, nil, false)
	err := app.Save(ctx)
	require.Error(t, err)
	assert.Equal(t, "Save Failed", notifier.last().Title)
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	app, notifier := newTestApp(t)
	ctx := context.Background()
	quietPrintln(t)

	stubInputs(t, []string{"alice"}, []string{"secret", "secret"}, false)
	require.NoError(t, app.Register(ctx))
	stubInputs(t, []string{"alice"}, []string{"secret"}, false)
	require.NoError(t, app.Login(ctx))
	stubInputs(t, []string{"qr", "hello", "", ""}, nil, false)
	require.NoError(t, app.Generate(ctx))
	stubInputs(t, []string{"keep-me", "png"}, nil, false)
	require.NoError(t, app.Save(ctx))

	list, err := app.items.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	id := list[0].ID

	// declined: the item stays
	stubInputs(t, []string{id}, nil, false)
	require.NoError(t, app.Delete(ctx))
	assert.Equal(t, "Delete Cancelled", notifier.last().Title)
	list, err = app.items.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// confirmed: the item goes
	stubInputs(t, []string{id}, nil, true)
	require.NoError(t, app.Delete(ctx))
	assert.Equal(t, "Code Deleted", notifier.last().Title)
	list, err = app.items.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestExport_WritesSavedItem(t *testing.T) {
	app, notifier := newTestApp(t)
	ctx := context.Background()
	quietPrintln(t)

	stubInputs(t, []string{"alice"}, []string{"secret", "secret"}, false)
	require.NoError(t, app.Register(ctx))
	stubInputs(t, []string{"alice"}, []string{"secret"}, false)
	require.NoError(t, app.Login(ctx))
	stubInputs(t, []string{"qr", "https://example.org", "", ""}, nil, false)
	require.NoError(t, app.Generate(ctx))
	stubInputs(t, []string{"homepage", "svg"}, nil, false)
	require.NoError(t, app.Save(ctx))

	list, err := app.items.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)

	stubInputs(t, []string{list[0].ID}, nil, false)
	require.NoError(t, app.Export(ctx))
	assert.Equal(t, "Download Complete", notifier.last().Title)

	stubInputs(t, []string{"no-such-id"}, nil, false)
	err = app.Export(ctx)
	require.Error(t, err)
	assert.Equal(t, "Download Failed", notifier.last().Title)
}

func TestCommands_RequireLogin(t *testing.T) {
	app, notifier := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, []string{"anything"}, []string{"secret"}, true)
	require.Error(t, app.Generate(ctx))
	assert.Nil(t, app.codes.Current(), "logged-out generate must stage nothing")
	require.Error(t, app.Save(ctx))
	require.Error(t, app.Download(ctx))
	require.Error(t, app.List(ctx))
	require.Error(t, app.Search(ctx))
	require.Error(t, app.Delete(ctx))
	require.Error(t, app.Export(ctx))
	require.Error(t, app.Rename(ctx))
	require.Error(t, app.Profile(ctx))
	assert.Equal(t, notify.SeverityError, notifier.last().Severity)
}

func TestDelete_OtherOwnersItemIsUntouchable(t *testing.T) {
	app, notifier := newTestApp(t)
	ctx := context.Background()
	quietPrintln(t)

	// alice saves a code
	stubInputs(t, []string{"alice"}, []string{"secret", "secret"}, false)
	require.NoError(t, app.Register(ctx))
	stubInputs(t, []string{"alice"}, []string{"secret"}, false)
	require.NoError(t, app.Login(ctx))
	stubInputs(t, []string{"qr", "hers", "", ""}, nil, false)
	require.NoError(t, app.Generate(ctx))
	stubInputs(t, []string{"hers", "png"}, nil, false)
	require.NoError(t, app.Save(ctx))

	hers, err := app.items.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, hers, 1)

	require.NoError(t, app.Logout(ctx))

	// bob tries to delete alice's item by its id, confirming the prompt
	stubInputs(t, []string{"bob"}, []string{"hunter22", "hunter22"}, false)
	require.NoError(t, app.Register(ctx))
	stubInputs(t, []string{"bob"}, []string{"hunter22"}, false)
	require.NoError(t, app.Login(ctx))

	stubInputs(t, []string{hers[0].ID}, nil, true)
	err = app.Delete(ctx)
	require.Error(t, err)
	assert.Equal(t, "Delete Failed", notifier.last().Title)

	survived, err := app.items.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, survived, 1, "another user's delete must not remove the item")
}

func TestProfile_CountsByKind(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	quietPrintln(t)

	stubInputs(t, []string{"alice"}, []string{"secret", "secret"}, false)
	require.NoError(t, app.Register(ctx))
	stubInputs(t, []string{"alice"}, []string{"secret"}, false)
	require.NoError(t, app.Login(ctx))

	stubInputs(t, []string{"qr", "hello", "", ""}, nil, false)
	require.NoError(t, app.Generate(ctx))
	stubInputs(t, []string{"", ""}, nil, false)
	require.NoError(t, app.Save(ctx))

	stubInputs(t, []string{"barcode", "12345", "300", ""}, nil, false)
	require.NoError(t, app.Generate(ctx))
	stubInputs(t, []string{"", ""}, nil, false)
	require.NoError(t, app.Save(ctx))

	require.NoError(t, app.Profile(ctx))

	list, err := app.items.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
