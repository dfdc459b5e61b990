/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package translate

// English is the source language of every stored string.
const English = "en"

// Language is a supported output language.
type Language struct {
	Name string
	Code string
}

// Languages lists the output languages in display order.
var Languages = []Language{
	{Name: "English", Code: English},
	{Name: "Hindi", Code: "hi"},
	{Name: "Telugu", Code: "te"},
	{Name: "Tamil", Code: "ta"},
}

// LanguageMap returns the supported languages keyed by display name.
func LanguageMap() map[string]string {
	out := make(map[string]string, len(Languages))
	for _, lang := range Languages {
		out[lang.Name] = lang.Code
	}

	return out
}

// LanguageName returns the display name for a code.
func LanguageName(code string) (string, bool) {
	for _, lang := range Languages {
		if lang.Code == code {
			return lang.Name, true
		}
	}

	return "", false
}
