package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{arg: "1", want: 1},
		{arg: "42", want: 42},
		{arg: "0", wantErr: true},
		{arg: "-3", wantErr: true},
		{arg: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			id, err := parseID(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestCommands_Wiring(t *testing.T) {
	assert.NotNil(t, ListCmd.Flags().Lookup("sort"))
	assert.NotNil(t, ListCmd.Flags().Lookup("page-size"))
	assert.NotNil(t, UploadCmd.Flags().Lookup("category"))
	assert.NotNil(t, UpdateCmd.Flags().Lookup("status"))
	assert.Error(t, GetCmd.Args(GetCmd, nil))
	assert.Error(t, UploadCmd.Args(UploadCmd, nil))
}
