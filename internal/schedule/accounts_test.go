package schedule

import (
	"testing"

	"github.com/existflow/dayplan/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	return New(kvstore.NewMemory())
}

func TestSignUp_ThenCurrentAccount(t *testing.T) {
	p := newTestPlanner(t)

	account, err := p.SignUp("Ann", "ann@x.com", "secret1", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", account.Name)
	assert.Equal(t, "ann@x.com", account.Email)
	assert.Empty(t, account.Tasks)
	assert.NotEmpty(t, account.ID)

	current, err := p.CurrentAccount()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "ann@x.com", current.Email)
	assert.Empty(t, current.Tasks)
}

func TestSignUp_Validation(t *testing.T) {
	tests := []struct {
		name     string
		inName   string
		email    string
		password string
		confirm  string
	}{
		{"empty name", "", "a@x.com", "secret1", "secret1"},
		{"empty email", "Ann", "", "secret1", "secret1"},
		{"empty password", "Ann", "a@x.com", "", ""},
		{"mismatched confirm", "Ann", "a@x.com", "secret1", "secret2"},
		{"short password", "Ann", "a@x.com", "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlanner(t)
			_, err := p.SignUp(tt.inName, tt.email, tt.password, tt.confirm)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)

			// A failed signup must not create a session.
			current, err := p.CurrentAccount()
			require.NoError(t, err)
			assert.Nil(t, current)
		})
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	p := newTestPlanner(t)

	_, err := p.SignUp("Ann", "ann@x.com", "secret1", "secret1")
	require.NoError(t, err)

	_, err = p.SignUp("Bob", "ann@x.com", "other12", "other12")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
}

func TestLogIn(t *testing.T) {
	p := newTestPlanner(t)
	_, err := p.SignUp("Ann", "ann@x.com", "secret1", "secret1")
	require.NoError(t, err)
	require.NoError(t, p.LogOut())

	account, err := p.LogIn("ann@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", account.Name)

	current, err := p.CurrentAccount()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "ann@x.com", current.Email)
}

func TestLogIn_WrongCredentials(t *testing.T) {
	p := newTestPlanner(t)
	_, err := p.SignUp("Ann", "ann@x.com", "secret1", "secret1")
	require.NoError(t, err)
	require.NoError(t, p.LogOut())

	var aerr *AuthenticationError

	_, err = p.LogIn("ann@x.com", "wrong-password")
	require.ErrorAs(t, err, &aerr)

	_, err = p.LogIn("nobody@x.com", "secret1")
	require.ErrorAs(t, err, &aerr)

	current, err := p.CurrentAccount()
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestLogOut(t *testing.T) {
	p := newTestPlanner(t)
	_, err := p.SignUp("Ann", "ann@x.com", "secret1", "secret1")
	require.NoError(t, err)

	require.NoError(t, p.LogOut())

	current, err := p.CurrentAccount()
	require.NoError(t, err)
	assert.Nil(t, current)

	// Logging out while logged out stays fine.
	require.NoError(t, p.LogOut())
}

func TestCurrentAccount_MalformedSession(t *testing.T) {
	store := kvstore.NewMemory()
	p := New(store)

	require.NoError(t, store.Set("session", "{not json"))
	current, err := p.CurrentAccount()
	require.NoError(t, err)
	assert.Nil(t, current)

	require.NoError(t, store.Set("session", `{"email":"x@x.com"}`))
	current, err = p.CurrentAccount()
	require.NoError(t, err)
	assert.Nil(t, current, "session without account id is malformed")
}

func TestPasswordsAreHashed(t *testing.T) {
	store := kvstore.NewMemory()
	p := New(store)

	_, err := p.SignUp("Ann", "ann@x.com", "secret1", "secret1")
	require.NoError(t, err)

	raw, ok, err := store.Get("accounts")
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, raw, "secret1")

	roster, err := p.loadRoster()
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(roster[0].PasswordHash), []byte("secret1")))
}

func TestSeedDemoAccounts(t *testing.T) {
	p := newTestPlanner(t)

	require.NoError(t, p.SeedDemoAccounts())
	// Seeding again must not duplicate.
	require.NoError(t, p.SeedDemoAccounts())

	roster, err := p.loadRoster()
	require.NoError(t, err)
	require.Len(t, roster, 2)

	account, err := p.LogIn("user@demo.com", "demo123")
	require.NoError(t, err)
	assert.Len(t, account.Tasks, 2)

	account, err = p.LogIn("test@demo.com", "test123")
	require.NoError(t, err)
	assert.Empty(t, account.Tasks)
}
