package extract

import (
	"testing"
)

func TestExtractAddress_LabelBlock(t *testing.T) {
	text := "Name: Ravi Kumar\n" +
		"Address: 12 MG Road\n" +
		"Pune Maharashtra 411001\n" +
		"PAN: ABCDE1234F"

	got := ExtractAddress(text)
	want := "12 MG Road Pune Maharashtra 411001"
	if got != want {
		t.Errorf("ExtractAddress() = %q, want %q", got, want)
	}
}

func TestExtractAddress_LabelBlockStopsAtNextField(t *testing.T) {
	text := "Address: 45 Shanti Nagar Colony\n" +
		"Mobile: 9876543210"

	got := ExtractAddress(text)
	want := "45 Shanti Nagar Colony"
	if got != want {
		t.Errorf("ExtractAddress() = %q, want %q", got, want)
	}
}

func TestExtractAddress_Narrative(t *testing.T) {
	text := "The subject is residing at 45 Nehru Street, Sector 12, Delhi 110001. Further details follow."

	got := ExtractAddress(text)
	want := "45 Nehru Street, Sector 12, Delhi 110001"
	if got != want {
		t.Errorf("ExtractAddress() = %q, want %q", got, want)
	}
}

func TestExtractAddress_KeywordCapture(t *testing.T) {
	text := "Flat 4B Shanti Apartments\n" +
		"MG Road\n" +
		"Pune Maharashtra\n" +
		"411001\n" +
		"PAN: ABCDE1234F"

	got := ExtractAddress(text)
	want := "Flat 4B Shanti Apartments MG Road Pune Maharashtra 411001"
	if got != want {
		t.Errorf("ExtractAddress() = %q, want %q", got, want)
	}
}

func TestExtractAddress_NoCandidate(t *testing.T) {
	text := "This document contains no location information at all."
	if got := ExtractAddress(text); got != "" {
		t.Errorf("ExtractAddress() = %q, want empty", got)
	}
}

func TestPlausibleAddress(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want bool
	}{
		{
			name: "pin state and locality",
			addr: "123 MG Road, Pune, Maharashtra 411001",
			want: true,
		},
		{
			name: "pin alone",
			addr: "Plot 7, Gandhinagar 382010",
			want: true,
		},
		{
			name: "narrative prose rejected",
			addr: "He was affected by the breach",
			want: false,
		},
		{
			name: "too short",
			addr: "MG Road 411001",
			want: false,
		},
		{
			name: "state and locality without pin",
			addr: "Nehru Street, Chennai, Tamil Nadu",
			want: true,
		},
		{
			name: "locality alone not enough",
			addr: "somewhere on a long road trip",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plausibleAddress(tt.addr); got != tt.want {
				t.Errorf("plausibleAddress(%q) = %v, want %v", tt.addr, got, tt.want)
			}
		})
	}
}

func TestExtractAddressNearName(t *testing.T) {
	text := "Applicant details follow. Ravi Kumar is residing at 12 MG Road, Pune 411001. " +
		"Unrelated narrative continues for a while after that sentence."

	got := ExtractAddressNearName(text, "Ravi Kumar")
	want := "12 MG Road, Pune 411001"
	if got != want {
		t.Errorf("ExtractAddressNearName() = %q, want %q", got, want)
	}
}

func TestExtractAddressNearName_NameAbsent(t *testing.T) {
	text := "Sita Devi is residing at 12 MG Road, Pune 411001."
	if got := ExtractAddressNearName(text, "Ravi Kumar"); got != "" {
		t.Errorf("ExtractAddressNearName() = %q, want empty", got)
	}
}

func TestExtractAddressNearName_EmptyName(t *testing.T) {
	if got := ExtractAddressNearName("any text", ""); got != "" {
		t.Errorf("ExtractAddressNearName() = %q, want empty", got)
	}
}
