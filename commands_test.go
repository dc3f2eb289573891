package main

import (
	"bytes"
	"testing"
)

func TestPrintLabels(t *testing.T) {
	var b bytes.Buffer
	printLabels(&b)

	want := "index  0 1 2 3 4 5 6 7\n" +
		"file   a b c d e f g h\n" +
		"rank   1 2 3 4 5 6 7 8\n"

	if b.String() != want {
		t.Errorf("printLabels() = %q, want %q", b.String(), want)
	}
}

func TestNextCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantResult string
		wantErr    bool
	}{
		{
			name:       "Plain click on an empty square",
			args:       []string{"next", "--shift=false", "--ctrl=false", "--alt=false", "--current=none"},
			wantResult: "red\n",
		},
		{
			name:       "Shift on a green square",
			args:       []string{"next", "--shift=true", "--ctrl=false", "--alt=false", "--current=green"},
			wantResult: "none\n",
		},
		{
			name:       "Alt on a red square",
			args:       []string{"next", "--shift=false", "--ctrl=false", "--alt=true", "--current=red"},
			wantResult: "blue\n",
		},
		{
			name:    "Unknown current color",
			args:    []string{"next", "--shift=false", "--ctrl=false", "--alt=false", "--current=pink"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&out)
			rootCmd.SetArgs(tt.args)

			err := rootCmd.Execute()

			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}

			if !tt.wantErr && out.String() != tt.wantResult {
				t.Errorf("next output = %q, want %q", out.String(), tt.wantResult)
			}
		})
	}
}
