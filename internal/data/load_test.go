package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
	return path
}

func TestLoad(t *testing.T) {

	type test struct {
		content string
		names   []string
		rows    [][]float64
		err     bool
	}

	tests := map[string]test{
		"clean-and-encode": {
			content: "likes;Type;shares\n" +
				"10;Photo;3\n" +
				"20;Link;5\n" +
				"30;Photo;1\n",
			names: []string{"likes", "shares", "Type_Link", "Type_Photo"},
			rows: [][]float64{
				{10, 3, 0, 1},
				{20, 5, 1, 0},
				{30, 1, 0, 1},
			},
		},
		"sentinel-rows-dropped": {
			content: "likes;Type;shares\n" +
				"10;Photo;?\n" +
				"20;Link;5\n",
			names: []string{"likes", "shares", "Type_Link"},
			rows: [][]float64{
				{20, 5, 1},
			},
		},
		"whitespace-trimmed": {
			content: "likes;Type;shares\n" +
				" 10 ; Photo ; 3 \n",
			names: []string{"likes", "shares", "Type_Photo"},
			rows: [][]float64{
				{10, 3, 1},
			},
		},
		"all-rows-dropped": {
			content: "likes;Type;shares\n" +
				"?;Photo;3\n",
			err: true,
		},
		"non-numeric-after-cleaning": {
			content: "likes;Type;shares\n" +
				"abc;Photo;3\n",
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeDataset(t, tt.content)
			frame, err := Load(path, NewConfig())
			if tt.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.names, frame.Names)
			assert.Equal(t, tt.rows, frame.Rows)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), NewConfig())
	assert.Error(t, err)
}

func TestLoad_MissingDummyColumn(t *testing.T) {
	path := writeDataset(t, "likes;shares\n1;2\n")
	_, err := Load(path, NewConfig())
	assert.Error(t, err)
}

func TestFrame_Scale(t *testing.T) {
	path := writeDataset(t, "likes;Type;shares\n"+
		"10;Photo;1\n"+
		"20;Link;1\n"+
		"30;Photo;1\n")

	cfg := NewConfig()
	cfg.Scale = true
	frame, err := Load(path, cfg)
	assert.NoError(t, err)

	// scaled columns are centered ; constant columns only centered
	likes := frame.Column(0)
	assert.InDelta(t, 0, likes[0]+likes[1]+likes[2], 1e-12)
	shares := frame.Column(1)
	assert.Equal(t, []float64{0, 0, 0}, shares)
}
