// Package stats derives dashboard figures from domain record lists.
//
// Every function is pure and total: inputs are never modified, nil or empty
// lists produce zero values, and percentages guard against division by zero.
// Calendar comparisons use each timestamp's own year, month and day so that
// date-only values compare the same regardless of location.
package stats
