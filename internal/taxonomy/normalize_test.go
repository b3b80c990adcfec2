package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seo-microservice/internal/taxonomy"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain lowercase", "brasov", "brasov"},
		{"diacritics stripped", "Brașov", "brasov"},
		{"cedilla variants stripped", "Braşov", "brasov"},
		{"multiple diacritics", "Bistrița-Năsăud", "bistrita nasaud"},
		{"uppercase with diacritics", "BUCUREȘTI", "bucuresti"},
		{"punctuation collapsed", "Cluj--Napoca", "cluj napoca"},
		{"surrounding whitespace", "  Satu   Mare  ", "satu mare"},
		{"digits kept", "Zona 3", "zona 3"},
		{"empty", "", ""},
		{"only punctuation", "--  --", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, taxonomy.Normalize(tt.input))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Brașov", "brasov"},
		{"Bistrița-Năsăud", "bistrita-nasaud"},
		{"Satu Mare", "satu-mare"},
		{"Valea Prahovei", "valea-prahovei"},
		{"Caraș-Severin", "caras-severin"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, taxonomy.Slugify(tt.input), "input %q", tt.input)
	}
}
