package constants

import (
	"path/filepath"
	"strings"
)

// DocumentFormats holds the allowed file types for extraction input.
var DocumentFormats = []string{"PDF", "IMAGE", "TXT"}

// ReferenceFormats holds the supported reference dataset formats.
const (
	ReferenceCSV  = "CSV"
	ReferenceTSV  = "TSV"
	ReferenceXLSX = "XLSX"
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a document file extension to its extraction format,
// returning "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "PDF"
	case "jpg", "jpeg", "png", "tif", "tiff", "heic":
		return "IMAGE"
	case "txt":
		return "TXT"
	}
	return ""
}

// ReferenceFormatForPath maps a reference dataset path to its format,
// returning "" for unsupported extensions.
func ReferenceFormatForPath(path string) string {
	switch NormalizeExt(filepath.Ext(path)) {
	case "csv":
		return ReferenceCSV
	case "tsv", "tab":
		return ReferenceTSV
	case "xlsx", "xlsm":
		return ReferenceXLSX
	}
	return ""
}
