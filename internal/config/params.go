package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/sweeper/internal/mines"
)

type GameParamsDTO struct {
	Rows  int `schema:"rows,required"`
	Cols  int `schema:"cols,required"`
	Mines int `schema:"mines,required"`
}

func ParseGameParams(src map[string][]string) (mines.Params, error) {
	var dto GameParamsDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, src); err != nil {
		return mines.Params{}, fmt.Errorf("%w: %w", mines.ErrInvalidParams, err)
	}
	params := mines.Params(dto)
	if err := params.Validate(); err != nil {
		return mines.Params{}, err
	}
	return params, nil
}

// Params resolves the board parameters, preferring explicit params over the
// named preset.
func (g Game) Params() (mines.Params, error) {
	if g.Query != "" {
		query, err := url.ParseQuery(g.Query)
		if err != nil {
			return mines.Params{}, fmt.Errorf("unable to parse game params %q: %w", g.Query, err)
		}
		return ParseGameParams(query)
	}

	name := g.Preset
	if name == "" {
		name = mines.DefaultPreset
	}
	params, ok := mines.Preset(name)
	if !ok {
		return mines.Params{}, fmt.Errorf(
			"%w: unknown preset %q (want one of %s)",
			mines.ErrInvalidParams, name, strings.Join(mines.PresetNames(), ", "),
		)
	}
	return params, nil
}
