// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (stored records, outcomes, errors) and contracts
// (interfaces) only.
package domain
