package subscription

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"gamerental-backend/internal/domain"
)

func writeSubscriptionFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "subscriptions.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write subscription file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Parses header-prefixed entries", func(t *testing.T) {
		path := writeSubscriptionFile(t,
			"Customer Id\tSubscription Type\tStatus\n"+
				"9967\tStandard\tActive\n"+
				"1234\tBasic\tInactive\n")

		dir, err := Load(path)
		assert.NoError(t, err)

		entry, ok := dir.Get("9967")
		assert.True(t, ok)
		assert.Equal(t, "Standard", entry.SubscriptionType)
		assert.True(t, entry.Active)

		entry, ok = dir.Get("1234")
		assert.True(t, ok)
		assert.False(t, entry.Active)
	})

	t.Run("Malformed entry fails the load", func(t *testing.T) {
		path := writeSubscriptionFile(t, "header\n9967\tStandard\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})
}

func TestDirectory_Check(t *testing.T) {
	dir := NewDirectory([]domain.CustomerSubscription{
		{CustomerID: "9967", SubscriptionType: "Standard", Active: true},
		{CustomerID: "1234", SubscriptionType: "Basic", Active: false},
	})

	assert.Equal(t, domain.SubscriptionActive, dir.Check("9967"))
	assert.Equal(t, domain.SubscriptionInactive, dir.Check("1234"))
	assert.Equal(t, domain.SubscriptionNonExistent, dir.Check("0000"))
}

func TestRentalLimit(t *testing.T) {
	limit, err := RentalLimit("Standard")
	assert.NoError(t, err)
	assert.Equal(t, 2, limit)

	limit, err = RentalLimit("Premium")
	assert.NoError(t, err)
	assert.Equal(t, 4, limit)

	_, err = RentalLimit("Gold")
	assert.ErrorIs(t, err, domain.ErrUnknownSubscriptionType)
}
