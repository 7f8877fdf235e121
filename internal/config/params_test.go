package config

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sweeper/internal/mines"
)

func TestParseGameParams(t *testing.T) {
	query, err := url.ParseQuery("rows=16&cols=30&mines=99&unique=1")
	require.NoError(t, err)

	params, err := ParseGameParams(query)
	require.NoError(t, err)
	assert.Equal(t, mines.Params{Rows: 16, Cols: 30, Mines: 99}, params)
}

func TestParseGameParamsErrors(t *testing.T) {
	tests := []string{
		"rows=16&cols=30",
		"rows=x&cols=30&mines=1",
		"rows=3&cols=3&mines=9",
		"rows=0&cols=3&mines=1",
	}
	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			query, err := url.ParseQuery(test)
			require.NoError(t, err)
			_, err = ParseGameParams(query)
			assert.ErrorIs(t, err, mines.ErrInvalidParams)
		})
	}
}

func TestGameParams(t *testing.T) {
	tests := []struct {
		name string
		game Game
		want mines.Params
	}{
		{"empty", Game{}, mines.Params{Rows: 10, Cols: 10, Mines: 10}},
		{"preset", Game{Preset: "beginner"}, mines.Params{Rows: 9, Cols: 9, Mines: 10}},
		{
			"query wins",
			Game{Preset: "beginner", Query: "rows=5&cols=4&mines=3"},
			mines.Params{Rows: 5, Cols: 4, Mines: 3},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params, err := test.game.Params()
			require.NoError(t, err)
			assert.Equal(t, test.want, params)
		})
	}

	_, err := Game{Preset: "nightmare"}.Params()
	assert.ErrorIs(t, err, mines.ErrInvalidParams)

	_, err = Game{Query: "rows=%zz"}.Params()
	assert.Error(t, err)
}
