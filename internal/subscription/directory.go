package subscription

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gamerental-backend/internal/domain"
)

// rentalLimits maps a subscription type to the number of games a customer may
// have out at the same time.
var rentalLimits = map[string]int{
	"Basic":    1,
	"Standard": 2,
	"Premium":  4,
}

// Directory is the external customer subscription collaborator, loaded from a
// tab-separated file of `customer_id \t subscription_type \t status` rows.
type Directory struct {
	entries map[string]domain.CustomerSubscription
}

// Load reads the subscription directory file. The first line is a header.
func Load(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subscription file: %w", err)
	}
	defer f.Close()

	entries := make(map[string]domain.CustomerSubscription)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if lineNo == 1 || line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, fmt.Errorf("malformed subscription entry on line %d: %q", lineNo, line)
		}
		customerID := strings.TrimSpace(fields[0])
		entries[customerID] = domain.CustomerSubscription{
			CustomerID:       customerID,
			SubscriptionType: strings.TrimSpace(fields[1]),
			Active:           strings.EqualFold(strings.TrimSpace(fields[2]), "active"),
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subscription file: %w", err)
	}

	return &Directory{entries: entries}, nil
}

// NewDirectory builds a directory from in-memory entries. Used by tests and
// callers that source subscriptions elsewhere.
func NewDirectory(subs []domain.CustomerSubscription) *Directory {
	entries := make(map[string]domain.CustomerSubscription, len(subs))
	for _, s := range subs {
		entries[s.CustomerID] = s
	}
	return &Directory{entries: entries}
}

// Check reports the subscription status for a customer id.
func (d *Directory) Check(customerID string) domain.SubscriptionStatus {
	entry, ok := d.entries[customerID]
	if !ok {
		return domain.SubscriptionNonExistent
	}
	if !entry.Active {
		return domain.SubscriptionInactive
	}
	return domain.SubscriptionActive
}

// Get returns the directory entry for a customer id.
func (d *Directory) Get(customerID string) (domain.CustomerSubscription, bool) {
	entry, ok := d.entries[customerID]
	return entry, ok
}

// RentalLimit returns how many concurrent rentals a subscription type allows.
func RentalLimit(subscriptionType string) (int, error) {
	limit, ok := rentalLimits[subscriptionType]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownSubscriptionType, subscriptionType)
	}
	return limit, nil
}
