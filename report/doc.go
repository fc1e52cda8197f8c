// Package report renders generated load combinations for human and
// spreadsheet consumption: a CSV table of (combination, case, factor)
// rows and an ASCII tree view of any load-group tree.
package report
