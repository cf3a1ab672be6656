package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runOffline(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOGGER_LEVEL", "error")

	var out bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--offline"))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestOfflineCommands(t *testing.T) {
	t.Run("Doctors", func(t *testing.T) {
		out, err := runOffline(t, "doctors")

		require.NoError(t, err)
		assert.Contains(t, out, "Dr Amani Kabila")
		assert.Contains(t, out, "(not available)")
	})

	t.Run("Me", func(t *testing.T) {
		out, err := runOffline(t, "me")

		require.NoError(t, err)
		assert.Contains(t, out, "Demo Patient <demo@medifax.local>")
	})

	t.Run("Me Then Appointments", func(t *testing.T) {
		out, err := runOffline(t, "me", "--appointments")

		require.NoError(t, err)
		assert.Contains(t, out, "-> navigate(appointments)")
		assert.Contains(t, out, "No appointments yet.")
	})

	t.Run("Book", func(t *testing.T) {
		out, err := runOffline(t, "book", "1", "--date", "2024-05-01", "--description", "checkup")

		require.NoError(t, err)
		assert.Contains(t, out, "-> pop_back")
		assert.Contains(t, out, "with doctor 1: checkup")
	})

	t.Run("Book Unavailable Doctor", func(t *testing.T) {
		out, err := runOffline(t, "book", "3", "--date", "2024-05-01", "--description", "checkup")

		require.Error(t, err)
		assert.Contains(t, out, `-> notify("`)
		assert.NotContains(t, out, "pop_back")
	})

	t.Run("Book Description Too Long", func(t *testing.T) {
		_, err := runOffline(t, "book", "1", "--date", "2024-05-01", "--description", strings.Repeat("x", 256))

		assert.EqualError(t, err, "description maximum at 255 characters long")
	})

	t.Run("Login Wrong Password", func(t *testing.T) {
		out, err := runOffline(t, "login", "--email", "demo@medifax.local", "--password", "wrong")

		require.Error(t, err)
		assert.NotContains(t, out, "navigate(home)")
	})

	t.Run("Login", func(t *testing.T) {
		out, err := runOffline(t, "login", "--email", "demo@medifax.local", "--password", "demo1234")

		require.NoError(t, err)
		assert.Contains(t, out, "-> navigate(home)")
	})

	t.Run("Logout", func(t *testing.T) {
		out, err := runOffline(t, "logout")

		require.NoError(t, err)
		assert.Contains(t, out, "-> navigate(logout)")
	})
}
