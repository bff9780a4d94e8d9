package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rawRecord(gameID, start, end, customerID string) RawRecord {
	return RawRecord{
		GameID:      gameID,
		RentalStart: start,
		RentalEnd:   end,
		CustomerID:  customerID,
		Raw:         gameID + "\t" + start + "\t" + end + "\t" + customerID,
	}
}

func TestCleaner_Clean(t *testing.T) {
	t.Run("Accepts a complete record and normalizes dates", func(t *testing.T) {
		c := NewCleaner()
		outcome := c.Clean(rawRecord("50", "09/11/2023", "12/11/2023", "9967"))
		assert.True(t, outcome.Accepted)
		assert.Equal(t, int64(1), outcome.Record.RentalIndex)
		assert.Equal(t, "09-11-2023", outcome.Record.StartDate)
		assert.Equal(t, "12-11-2023", outcome.Record.EndDate)
	})

	t.Run("Empty rental end means an open rental", func(t *testing.T) {
		c := NewCleaner()
		outcome := c.Clean(rawRecord("50", "09-11-2023", "", "9967"))
		assert.True(t, outcome.Accepted)
		assert.Equal(t, "", outcome.Record.EndDate)
	})

	t.Run("Missing required fields are rejected", func(t *testing.T) {
		c := NewCleaner()
		for _, raw := range []RawRecord{
			rawRecord("", "09-11-2023", "", "9967"),
			rawRecord("50", "", "", "9967"),
			rawRecord("50", "09-11-2023", "", ""),
		} {
			outcome := c.Clean(raw)
			assert.False(t, outcome.Accepted)
			assert.Equal(t, "missing required field", outcome.Rejection.Reason)
			assert.ErrorIs(t, outcome.Rejection.Err, ErrMissingField)
		}
	})

	t.Run("Customer id must be exactly 4 characters", func(t *testing.T) {
		c := NewCleaner()
		assert.False(t, c.Clean(rawRecord("50", "09-11-2023", "", "996")).Accepted)
		assert.False(t, c.Clean(rawRecord("50", "09-11-2023", "", "99671")).Accepted)
		assert.True(t, c.Clean(rawRecord("50", "09-11-2023", "", "9967")).Accepted)
	})

	t.Run("Duplicate tuple within the batch is rejected", func(t *testing.T) {
		c := NewCleaner()
		first := c.Clean(rawRecord("50", "09-11-2023", "12-11-2023", "9967"))
		second := c.Clean(rawRecord("50", "09-11-2023", "12-11-2023", "9967"))
		assert.True(t, first.Accepted)
		assert.False(t, second.Accepted)
		assert.Equal(t, "duplicate record", second.Rejection.Reason)
	})

	t.Run("Unparseable dates are rejected", func(t *testing.T) {
		c := NewCleaner()
		outcome := c.Clean(rawRecord("50", "not-a-date", "", "9967"))
		assert.False(t, outcome.Accepted)
		assert.ErrorIs(t, outcome.Rejection.Err, ErrUnrecognizedDateFormat)

		outcome = c.Clean(rawRecord("50", "09-11-2023", "not-a-date", "9967"))
		assert.False(t, outcome.Accepted)
		assert.Equal(t, "invalid rental end date", outcome.Rejection.Reason)
	})

	t.Run("Indices are sequential over accepted records only", func(t *testing.T) {
		c := NewCleaner()
		first := c.Clean(rawRecord("50", "09-11-2023", "", "9967"))
		rejectedOne := c.Clean(rawRecord("", "09-11-2023", "", "1234"))
		second := c.Clean(rawRecord("51", "10-11-2023", "", "1234"))

		assert.True(t, first.Accepted)
		assert.False(t, rejectedOne.Accepted)
		assert.True(t, second.Accepted)
		assert.Equal(t, int64(1), first.Record.RentalIndex)
		assert.Equal(t, int64(2), second.Record.RentalIndex)
	})
}
