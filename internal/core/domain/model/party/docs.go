// Package party holds the people and businesses around an order: the User the
// order is for, the Merchant that prepares it, and per-merchant
// PackagingFeedback recorded during mediation. Merchants are provisioned
// outside this system and read-only here.
package party
