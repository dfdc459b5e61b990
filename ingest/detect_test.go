// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"errors"
	"testing"
)

func TestDetectType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		data []byte
		want SourceType
	}{
		{name: "pdf magic", path: "report.bin", data: []byte("%PDF-1.7\n"), want: SourcePDF},
		{name: "png magic", path: "scan", data: append([]byte{}, pngMagic...), want: SourceImage},
		{name: "jpeg magic", path: "scan.dat", data: []byte{0xff, 0xd8, 0xff, 0xe0}, want: SourceImage},
		{name: "tiff magic", path: "scan", data: []byte{'I', 'I', 0x2a, 0x00, 0x08}, want: SourceImage},
		{name: "magic beats extension", path: "report.txt", data: []byte("%PDF-1.4"), want: SourcePDF},
		{name: "pdf extension", path: "REPORT.PDF", data: []byte("junk"), want: SourcePDF},
		{name: "jpeg extension", path: "photo.JPEG", data: nil, want: SourceImage},
		{name: "text extension", path: "notes.txt", data: []byte("Hemoglobin 12 g/dL"), want: SourceText},
		{name: "unknown text", path: "report", data: []byte("Glucose 90 mg/dL"), want: SourceText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DetectType(tt.path, tt.data)
			if err != nil {
				t.Fatalf("DetectType returned error: %v", err)
			}

			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDetectTypeRejectsBinary(t *testing.T) {
	t.Parallel()

	data := make([]byte, 100)
	data[0] = 'A'

	if _, err := DetectType("blob.bin", data); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}
