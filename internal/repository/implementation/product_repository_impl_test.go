package implementation

import (
	"testing"
)

func TestBuildTagConditions(t *testing.T) {
	tests := []struct {
		name      string
		titles    []string
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name:      "single title",
			titles:    []string{"Workshop Basics"},
			wantWhere: "LOWER(tags) LIKE LOWER(?)",
			wantArgs:  []interface{}{"%Workshop Basics%"},
		},
		{
			name:      "multiple titles joined with OR",
			titles:    []string{"Workshop Basics", "Finishing 101"},
			wantWhere: "LOWER(tags) LIKE LOWER(?) OR LOWER(tags) LIKE LOWER(?)",
			wantArgs:  []interface{}{"%Workshop Basics%", "%Finishing 101%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildTagConditions(tt.titles)

			if where != tt.wantWhere {
				t.Errorf("where = %q, want %q", where, tt.wantWhere)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("len(args) = %d, want %d", len(args), len(tt.wantArgs))
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %v, want %v", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}
