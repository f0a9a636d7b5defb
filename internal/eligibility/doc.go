// Package eligibility matches a customer profile against a snapshot of the
// lender reference data. Everything here is pure: callers supply the
// snapshot, the resolved category and the current date.
package eligibility
