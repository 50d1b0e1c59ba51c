package docformat

import "testing"

func TestComplianceScore(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{
			name: "fully structured resume",
			text: `Jane Smith
jane@example.com | (555) 123-4567

EXPERIENCE
- Built services
- Shipped features

EDUCATION
BS Computer Science

SKILLS
Go, Python`,
			expected: 100,
		},
		{
			name:     "empty text",
			text:     "",
			expected: 0,
		},
		{
			name:     "contact info only",
			text:     "Reach me at jane@example.com or (555) 123-4567",
			expected: 30,
		},
		{
			name:     "sections without contact or bullets",
			text:     "EXPERIENCE then EDUCATION then SKILLS",
			expected: 45,
		},
		{
			name:     "bullets only",
			text:     "* first item\n* second item",
			expected: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComplianceScore(tt.text)
			if got != tt.expected {
				t.Errorf("ComplianceScore = %f, expected %f", got, tt.expected)
			}
			if got < 0 || got > 100 {
				t.Errorf("Score %f out of [0,100]", got)
			}
		})
	}
}
