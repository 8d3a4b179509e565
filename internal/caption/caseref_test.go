// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package caption

import "testing"

func TestCaseRef(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "federal docket number",
			text: "pending in the SDNY as 1:23-cv-11195, the case concerns news archives",
			want: "1:23-cv-11195",
		},
		{
			name: "case no citation",
			text: "see Case No. 3:24-1234 for the full docket",
			want: "Case No. 3:24-1234",
		},
		{
			name: "bare no citation",
			text: "the court (No. 22-1564) affirmed",
			want: "No. 22-1564",
		},
		{
			name: "uk claim number",
			text: "issued in the High Court under Claim No. IL-2023-000007",
			want: "Claim No. IL-2023-000007",
		},
		{
			name: "first reference wins",
			text: "docketed as 1:25-cv-00001 and related to 1:24-cv-09999",
			want: "1:25-cv-00001",
		},
		{
			name: "no reference",
			text: "the parties continue to brief the motion",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CaseRef(tt.text); got != tt.want {
				t.Errorf("CaseRef(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
