package acronym_test

import (
	"testing"

	"github.com/onestep/osimport/pkg/acronym"
	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name       string
		fullName   string
		campusCode string
		want       string
	}{
		{
			name:       "drops portuguese connectives",
			fullName:   "Análise e Desenvolvimento em Sistemas Mecânicos",
			campusCode: "VIT",
			want:       "ADSM-VIT",
		},
		{
			name:       "two words",
			fullName:   "Ambiente Construído",
			campusCode: "COL",
			want:       "AC-COL",
		},
		{
			name:       "single word falls back to leading characters",
			fullName:   "Robótica",
			campusCode: "SER",
			want:       "ROB-SER",
		},
		{
			name:       "english stop words",
			fullName:   "Center for the Study of Energy",
			campusCode: "VIT",
			want:       "CSE-VIT",
		},
		{
			name:       "acronym portion capped at ten letters",
			fullName:   "Dois Três Quatro Cinco Seis Sete Oito Nove Dez Onze Doze",
			campusCode: "VIT",
			want:       "DTQCSSONDO-VIT",
		},
		{
			name:       "campus code truncated to three characters",
			fullName:   "Ambiente Construído",
			campusCode: "GUARAPARI",
			want:       "AC-GUA",
		},
		{
			name:       "all stop words still produces initials",
			fullName:   "De Para",
			campusCode: "COL",
			want:       "DP-COL",
		},
		{
			name:       "empty campus code",
			fullName:   "Ambiente Construído",
			campusCode: "",
			want:       "AC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := acronym.Generate(tt.fullName, tt.campusCode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := acronym.Generate("Análise e Desenvolvimento em Sistemas Mecânicos", "VIT")
	b := acronym.Generate("Análise e Desenvolvimento em Sistemas Mecânicos", "VIT")
	assert.Equal(t, a, b)
}
