package domain

// SubscriptionStatus is the state of a customer account in the external
// subscription directory.
type SubscriptionStatus string

const (
	SubscriptionActive      SubscriptionStatus = "ACTIVE"
	SubscriptionInactive    SubscriptionStatus = "INACTIVE"
	SubscriptionNonExistent SubscriptionStatus = "NON_EXISTENT"
)

// CustomerSubscription is one entry of the subscription directory.
type CustomerSubscription struct {
	CustomerID       string `json:"customer_id"`
	SubscriptionType string `json:"subscription_type"`
	Active           bool   `json:"active"`
}
