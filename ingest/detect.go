/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package ingest

import (
	"bytes"
	"path/filepath"
	"strings"
)

// SourceType is the kind of document text is extracted from.
type SourceType string

const (
	SourcePDF   SourceType = "pdf"
	SourceImage SourceType = "image"
	SourceText  SourceType = "text"
)

var (
	pdfMagic  = []byte("%PDF-")
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegMagic = []byte{0xff, 0xd8, 0xff}
	tiffLE    = []byte{'I', 'I', 0x2a, 0x00}
	tiffBE    = []byte{'M', 'M', 0x00, 0x2a}
)

var extensionTypes = map[string]SourceType{
	".pdf":  SourcePDF,
	".png":  SourceImage,
	".jpg":  SourceImage,
	".jpeg": SourceImage,
	".tif":  SourceImage,
	".tiff": SourceImage,
	".bmp":  SourceImage,
	".txt":  SourceText,
	".text": SourceText,
}

// DetectType decides how to read a file. Magic bytes win over the
// extension; files with neither are accepted as text unless they look
// binary.
func DetectType(path string, data []byte) (SourceType, error) {
	switch {
	case bytes.HasPrefix(data, pdfMagic):
		return SourcePDF, nil
	case bytes.HasPrefix(data, pngMagic), bytes.HasPrefix(data, jpegMagic),
		bytes.HasPrefix(data, tiffLE), bytes.HasPrefix(data, tiffBE):
		return SourceImage, nil
	}

	if st, ok := extensionTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return st, nil
	}

	if looksBinary(data) {
		return "", ErrUnsupportedType
	}

	return SourceText, nil
}

// looksBinary reports whether more than 2% of the bytes are NUL.
func looksBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	return float64(bytes.Count(data, []byte{0}))/float64(len(data)) > 0.02
}
