// Package files handles discovery of roster input files and the naming of
// processed output workbooks.
package files
