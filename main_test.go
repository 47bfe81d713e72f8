package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoPallet/models"
)

func TestParseBox(t *testing.T) {
	tests := []struct {
		arg     string
		want    models.BoxType
		wantErr bool
	}{
		{arg: "A:20x10x15:10", want: models.BoxType{ID: "A", Width: 20, Height: 10, Depth: 15, Qty: 10}},
		{arg: "箱1:5*5*5:0", want: models.BoxType{ID: "箱1", Width: 5, Height: 5, Depth: 5}},
		{arg: "A:20x10:10", wantErr: true},
		{arg: "A:20x10x15", wantErr: true},
		{arg: "A:20x10x15:many", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseBox(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPackCommand(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "result.xlsx")
	chart := filepath.Join(dir, "result.html")

	cmd := newPackCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"--pallet", "84x96x104",
		"--box", "A:20x10x15:10",
		"--format", "yaml",
		"--xlsx", xlsx,
		"--chart", chart,
		"--verify",
	})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "utilization:")
	assert.Contains(t, stderr.String(), "Best arrangement")
	assert.FileExists(t, xlsx)
	assert.FileExists(t, chart)
}

func TestPackCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad pallet", args: []string{"--pallet", "84x96"}},
		{name: "bad box", args: []string{"--pallet", "84x96x104", "--box", "A"}},
		{name: "negative qty", args: []string{"--pallet", "84x96x104", "--box", "A:1x1x1:-1"}},
		{name: "missing catalog", args: []string{"--pallet", "84x96x104", "--catalog", filepath.Join(os.TempDir(), "nope.xlsx")}},
		{name: "bad format", args: []string{"--pallet", "84x96x104", "--box", "A:1x1x1:1", "--format", "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newPackCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)
			assert.Error(t, cmd.Execute())
		})
	}
}
