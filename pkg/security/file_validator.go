package security

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

// FilePolicy describes what an upload slot accepts.
type FilePolicy struct {
	Name       string
	MaxBytes   int64
	Extensions map[string]bool
	MIMETypes  map[string]bool
}

var (
	// ResumePolicy accepts a single PDF up to 5 MB.
	ResumePolicy = FilePolicy{
		Name:       "resume",
		MaxBytes:   5 << 20,
		Extensions: map[string]bool{".pdf": true},
		MIMETypes:  map[string]bool{"application/pdf": true},
	}
	// ImagePolicy accepts JPEG or PNG pictures up to 2 MB.
	ImagePolicy = FilePolicy{
		Name:       "image",
		MaxBytes:   2 << 20,
		Extensions: map[string]bool{".jpg": true, ".jpeg": true, ".png": true},
		MIMETypes:  map[string]bool{"image/jpeg": true, "image/png": true},
	}
)

// Magic byte signatures keyed by lowercase extension
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".pdf":  {{0x25, 0x50, 0x44, 0x46}}, // %PDF
}

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool
	Extension    string
	DetectedMIME string
	Error        string
}

// ValidateFile runs the layered checks: size, extension whitelist, magic bytes, sniffed MIME type.
func ValidateFile(policy FilePolicy, filename string, data []byte) FileValidationResult {
	var result FileValidationResult

	if len(data) == 0 {
		result.Error = "file is empty"
		return result
	}
	if int64(len(data)) > policy.MaxBytes {
		result.Error = fmt.Sprintf("file exceeds the %d MB limit", policy.MaxBytes>>20)
		return result
	}

	ext := strings.ToLower(filepath.Ext(filename))
	result.Extension = ext
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	if !policy.Extensions[ext] {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension"
		return result
	}

	detected := mimetype.Detect(data).String()
	// mimetype appends parameters for some formats
	if i := strings.Index(detected, ";"); i >= 0 {
		detected = detected[:i]
	}
	result.DetectedMIME = detected
	if !policy.MIMETypes[detected] {
		result.Error = "MIME type not allowed: " + detected
		return result
	}

	result.Valid = true
	return result
}

func validateMagicBytes(ext string, data []byte) bool {
	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

var ErrUnreadablePDF = errors.New("pdf could not be parsed")

// InspectPDF parses the document structure and returns its page count.
func InspectPDF(data []byte) (pages int, err error) {
	// the parser panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			pages, err = 0, ErrUnreadablePDF
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}
	pages = reader.NumPage()
	if pages < 1 {
		return 0, ErrUnreadablePDF
	}
	return pages, nil
}
