// Package identity integrates with the external identity provider. The
// provider is the system of record for per-user usage and subscription
// state; this service owns no database.
package identity

import "strings"

// EmailAddress is one address attached to an identity record.
type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

// PublicMetadata holds the application-owned fields stored on the
// identity record. freeRunUsed/freeRunDate track the single free
// generation; the billing webhook maintains the subscription fields.
type PublicMetadata struct {
	IsPro            bool   `json:"isPro,omitempty"`
	FreeRunUsed      bool   `json:"freeRunUsed,omitempty"`
	FreeRunDate      string `json:"freeRunDate,omitempty"`
	StripeCustomerID string `json:"stripeCustomerId,omitempty"`
	SubscriptionID   string `json:"subscriptionId,omitempty"`
}

// User is an identity record as returned by the provider's admin API.
type User struct {
	ID             string         `json:"id"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
	PublicMetadata PublicMetadata `json:"public_metadata"`
}

// PrimaryEmail returns the first email address, or "".
func (u *User) PrimaryEmail() string {
	if u == nil || len(u.EmailAddresses) == 0 {
		return ""
	}
	return u.EmailAddresses[0].EmailAddress
}

// HasEmail reports whether any of the user's addresses matches,
// case-insensitively.
func (u *User) HasEmail(email string) bool {
	if u == nil {
		return false
	}
	for _, e := range u.EmailAddresses {
		if strings.EqualFold(e.EmailAddress, email) {
			return true
		}
	}
	return false
}

// MetadataPatch is a partial update to PublicMetadata. Nil fields are
// left untouched.
type MetadataPatch struct {
	IsPro            *bool
	FreeRunUsed      *bool
	FreeRunDate      *string
	StripeCustomerID *string
	SubscriptionID   *string
}

// Apply merges the patch into an existing metadata value.
func (p MetadataPatch) Apply(m PublicMetadata) PublicMetadata {
	if p.IsPro != nil {
		m.IsPro = *p.IsPro
	}
	if p.FreeRunUsed != nil {
		m.FreeRunUsed = *p.FreeRunUsed
	}
	if p.FreeRunDate != nil {
		m.FreeRunDate = *p.FreeRunDate
	}
	if p.StripeCustomerID != nil {
		m.StripeCustomerID = *p.StripeCustomerID
	}
	if p.SubscriptionID != nil {
		m.SubscriptionID = *p.SubscriptionID
	}
	return m
}

// Bool is a pointer helper for building patches.
func Bool(v bool) *bool { return &v }

// String is a pointer helper for building patches.
func String(v string) *string { return &v }
