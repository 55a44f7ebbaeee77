package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/kgraph/pkg/matrix"
)

func TestLoadEditorMatrix(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "w.txt")
	if err := os.WriteFile(existing, []byte(pathGraph), 0o644); err != nil {
		t.Fatal(err)
	}
	ragged := filepath.Join(dir, "ragged.json")
	if err := os.WriteFile(ragged, []byte("[[0,1],[1]]"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		want    matrix.Matrix
		wantErr bool
	}{
		{"no file", "", matrix.Zeros(4), false},
		{"new file", filepath.Join(dir, "new.txt"), matrix.Zeros(4), false},
		{"existing", existing, matrix.Matrix{{0, 2, 0}, {2, 0, 3}, {0, 3, 0}}, false},
		{"ragged", ragged, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadEditorMatrix(tt.path, 4)
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadEditorMatrix() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !matrix.Equal(got, tt.want) {
				t.Errorf("loadEditorMatrix() = %v, want %v", got, tt.want)
			}
		})
	}
}
