package model_test

import (
	"testing"

	"lodge/internal/domains/meal/model"
)

func TestClassifyBand(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{hour: 0, want: model.BandEtc},
		{hour: 3, want: model.BandEtc},
		{hour: 4, want: model.BandMorning},
		{hour: 9, want: model.BandMorning},
		{hour: 10, want: model.BandLunch},
		{hour: 14, want: model.BandLunch},
		{hour: 15, want: model.BandDinner},
		{hour: 20, want: model.BandDinner},
		{hour: 21, want: model.BandEtc},
		{hour: 23, want: model.BandEtc},
	}

	for _, tt := range tests {
		if got := model.ClassifyBand(tt.hour); got != tt.want {
			t.Errorf("ClassifyBand(%d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestBandLabel(t *testing.T) {
	tests := []struct {
		code  string
		label string
	}{
		{code: model.BandMorning, label: "Breakfast"},
		{code: model.BandLunch, label: "Lunch"},
		{code: model.BandDinner, label: "Dinner"},
		{code: model.BandEtc, label: "Other"},
		{code: "X", label: "Unknown"},
	}

	for _, tt := range tests {
		if got := model.BandLabel(tt.code); got != tt.label {
			t.Errorf("BandLabel(%q) = %s, want %s", tt.code, got, tt.label)
		}
	}
}
