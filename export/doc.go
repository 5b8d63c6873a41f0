// Package export reads the tabular service export. The first record is the
// header; every following record is returned as a Row keyed by column name.
package export
