package puzzle

import (
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

// Definition is an on-disk puzzle variant: the same drawings the defaults
// embed, carried in a YAML file with multi-line "board" and "pieces" keys.
type Definition struct {
	Board  string `json:"board"`
	Pieces string `json:"pieces"`
}

// LoadDefinition reads and parses a puzzle definition file.
func LoadDefinition(path string) (*Board, []Piece, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading puzzle definition %q", path)
	}
	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, nil, errors.Wrapf(err, "parsing puzzle definition %q", path)
	}
	if def.Board == "" || def.Pieces == "" {
		return nil, nil, errors.Errorf("puzzle definition %q must set both board and pieces", path)
	}
	b, err := ParseBoard(def.Board)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "puzzle definition %q", path)
	}
	pieces, err := ParsePieces(def.Pieces)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "puzzle definition %q", path)
	}
	return b, pieces, nil
}
