package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

func Test_runPack(t *testing.T) {
	type args struct {
		cmd  *cobra.Command
		args []string
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			"residues and ranges",
			args{packCmd, []string{"A5", "A6", "A7", "A10"}},
			false,
		},
		{
			"inverted range",
			args{packCmd, []string{"A10-5"}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runPack(tt.args.cmd, tt.args.args); (err != nil) != tt.wantErr {
				t.Errorf("runPack() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_runExpand(t *testing.T) {
	type args struct {
		cmd  *cobra.Command
		args []string
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			"valid range string",
			args{expandCmd, []string{"A5-7/A10-10"}},
			false,
		},
		{
			"missing chain letter",
			args{expandCmd, []string{"5-7"}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runExpand(tt.args.cmd, tt.args.args); (err != nil) != tt.wantErr {
				t.Errorf("runExpand() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
