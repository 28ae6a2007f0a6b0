// Package i18n resolves the operator's language and builds printers backed
// by the embedded message catalogs.
package i18n
