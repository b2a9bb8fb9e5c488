package discovery

import (
	"reflect"
	"testing"
)

func TestFilter_ByName(t *testing.T) {
	filter := NewFilter()

	files := []string{
		"/repo/pkg/api/user_test.go",
		"/repo/pkg/api/payment_test.go",
		"/repo/pkg/db/user_store_test.go",
	}

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{
			name:    "empty pattern keeps everything",
			pattern: "",
			want:    files,
		},
		{
			name:    "glob pattern on base name",
			pattern: "*user*",
			want:    []string{"/repo/pkg/api/user_test.go", "/repo/pkg/db/user_store_test.go"},
		},
		{
			name:    "exact file name",
			pattern: "payment_test.go",
			want:    []string{"/repo/pkg/api/payment_test.go"},
		},
		{
			name:    "plain pattern matches as substring",
			pattern: "store",
			want:    []string{"/repo/pkg/db/user_store_test.go"},
		},
		{
			name:    "brace alternation",
			pattern: "{user,payment}_test.go",
			want:    []string{"/repo/pkg/api/user_test.go", "/repo/pkg/api/payment_test.go"},
		},
		{
			name:    "no match",
			pattern: "*order*",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.ByName(files, tt.pattern)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ByName(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}
