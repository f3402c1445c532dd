package pii

import (
	"testing"

	"github.com/Satyapragyan-pradhan/pii-extractor/internal/document"
	"github.com/Satyapragyan-pradhan/pii-extractor/internal/extract"
)

func TestBuildRows(t *testing.T) {
	page := document.PageText{
		PageNumber: 3,
		RawText:    "Ravi Kumar signed here. Later Ravi Kumar countersigned.",
	}
	results := []extract.Result{
		{
			extract.FieldNames:   {"Ravi Kumar"},
			extract.FieldPAN:     {"ABCDE1234F"},
			extract.FieldPhone:   {"9876543210", "9123456789"},
			extract.FieldAddress: {"12 MG Road, Pune 411001"},
		},
	}

	rows := BuildRows("loan.pdf", page, results)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.FileName != "loan.pdf" {
		t.Errorf("expected FileName=loan.pdf, got %s", row.FileName)
	}
	if row.UserName != "Ravi Kumar" {
		t.Errorf("expected UserName=Ravi Kumar, got %s", row.UserName)
	}
	if row.PageNumber != 3 {
		t.Errorf("expected PageNumber=3, got %d", row.PageNumber)
	}
	if row.OccurrenceCount != 2 {
		t.Errorf("expected OccurrenceCount=2, got %d", row.OccurrenceCount)
	}
	if row.Phone != "9876543210, 9123456789" {
		t.Errorf("expected joined phones, got %s", row.Phone)
	}
	if row.PAN != "ABCDE1234F" {
		t.Errorf("expected PAN=ABCDE1234F, got %s", row.PAN)
	}
}

func TestBuildRows_DropsEmptyRows(t *testing.T) {
	page := document.PageText{PageNumber: 1, RawText: "nothing of interest"}
	results := []extract.Result{
		{},
		{extract.FieldEmail: {"ravi@example.com"}},
	}

	rows := BuildRows("note.txt", page, results)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Email != "ravi@example.com" {
		t.Errorf("expected email row to survive, got %+v", rows[0])
	}
}

func TestOccurrenceCount(t *testing.T) {
	tests := []struct {
		name     string
		person   string
		text     string
		expected int
	}{
		{
			name:     "multiple matches",
			person:   "Ravi Kumar",
			text:     "Ravi Kumar here, RAVI KUMAR there, ravi kumar everywhere",
			expected: 3,
		},
		{
			name:     "floor of one when absent",
			person:   "Sita Devi",
			text:     "no mention at all",
			expected: 1,
		},
		{
			name:     "whole word only",
			person:   "Ravi",
			text:     "Ravindra is not Ravi but Ravi is",
			expected: 2,
		},
		{
			name:     "empty name",
			person:   "",
			text:     "anything",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := occurrenceCount(tt.person, tt.text); got != tt.expected {
				t.Errorf("occurrenceCount(%q) = %d, want %d", tt.person, got, tt.expected)
			}
		})
	}
}
