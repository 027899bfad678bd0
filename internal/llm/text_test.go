package llm

import "testing"

func TestJSONContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"score":72}`, `{"score":72}`},
		{"whitespace", "\n  {\"score\":72}\n", `{"score":72}`},
		{"fenced json", "```json\n{\"score\":72}\n```", `{"score":72}`},
		{"fenced bare", "```\n{\"score\":72}\n```", `{"score":72}`},
		{"fenced single line", "```json{\"score\":72}```", `{"score":72}`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(jsonContent(tt.in)); got != tt.want {
				t.Errorf("jsonContent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
