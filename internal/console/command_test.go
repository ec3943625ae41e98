package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	testCases := []struct {
		in   string
		want Command
	}{
		{"", Command{Type: CmdDraw}},
		{"   ", Command{Type: CmdDraw}},
		{"s", Command{Type: CmdShowAll}},
		{"S", Command{Type: CmdShowAll}},
		{"help", Command{Type: CmdHelp}},
		{"q", Command{Type: CmdQuit}},
		{"0", Command{Type: CmdToFoundation, From: 0}},
		{"7", Command{Type: CmdToFoundation, From: 7}},
		{"06", Command{Type: CmdToTableau, From: 0, To: 6}},
		{"73", Command{Type: CmdToTableau, From: 7, To: 3}},
		{" 12 ", Command{Type: CmdToTableau, From: 1, To: 2}},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCommand(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	for _, in := range []string{"8", "9", "07", "80", "x", "1x", "123", "-1"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseCommand(in)
			assert.ErrorIs(t, err, ErrUnknownCommand)
		})
	}
}
