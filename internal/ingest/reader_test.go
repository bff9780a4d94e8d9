package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadRawRecords(t *testing.T) {
	input := "Game Id\tRental Start\tRental End\tCustomer Id\n" +
		"50\t09-11-2023\t\t9967\n" +
		"\n" +
		"51\t10/11/2023\t12/11/2023\t1234\n"

	records, err := ReadRawRecords(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "50", records[0].GameID)
	assert.Equal(t, "9967", records[0].CustomerID)
	assert.Equal(t, 2, records[0].Line)
	assert.Equal(t, "51", records[1].GameID)
	assert.Equal(t, 4, records[1].Line)
}

func TestReadRawRecords_ShortLinesArePadded(t *testing.T) {
	input := "header\n50\t09-11-2023\n"

	records, err := ReadRawRecords(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "", records[0].RentalEnd)
	assert.Equal(t, "", records[0].CustomerID)
}

func TestCleanAll(t *testing.T) {
	raws := []RawRecord{
		rawRecord("50", "09-11-2023", "", "9967"),
		rawRecord("50", "09-11-2023", "", "9967"), // duplicate
		rawRecord("", "09-11-2023", "", "1234"),   // missing game id
		rawRecord("51", "10-11-2023", "", "1234"),
	}

	cleaned, report := CleanAll(raws)

	assert.Len(t, cleaned, 2)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.Accepted)
	assert.Len(t, report.Rejections, 2)
	assert.NotEmpty(t, report.BatchID)
	// rejects keep the raw line for reporting
	assert.Contains(t, report.Rejections[0].Raw, "9967")
	assert.Equal(t, "duplicate record", report.Rejections[0].Reason)
	assert.Equal(t, "missing required field", report.Rejections[1].Reason)
	// indices over accepted records stay sequential from 1
	assert.Equal(t, int64(1), cleaned[0].RentalIndex)
	assert.Equal(t, int64(2), cleaned[1].RentalIndex)
}
