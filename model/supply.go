package model

import (
	"bufio"
	"encoding/json"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// RandomBoard fills an n x n board with independent Bernoulli(density) cells.
func RandomBoard(n int, rng *rand.Rand, density float64) (*Board, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[RandomBoard] size %d", n)
	}
	if density < 0 || density > 1 {
		return nil, errors.Errorf("[RandomBoard] density %v outside [0,1]", density)
	}
	b := newBoard(n)
	for r := range b.cells {
		for c := range b.cells[r] {
			if rng.Float64() < density {
				b.cells[r][c] = Alive
			}
		}
	}
	return b, nil
}

// ParseBoard reads one row per line of 0/1 characters. Commas and spaces
// between cells are ignored, as are blank lines and lines starting with '#'.
func ParseBoard(r io.Reader) (*Board, error) {
	var (
		cells   [][]uint8
		scanner = bufio.NewScanner(r)
		line    int
	)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		row := make([]uint8, 0, len(text))
		for _, ch := range text {
			switch ch {
			case '0':
				row = append(row, Dead)
			case '1':
				row = append(row, Alive)
			case ',', ' ', '\t':
			default:
				return nil, errors.Wrapf(ErrInvalidCell, "[ParseBoard] line %d: unexpected %q", line, ch)
			}
		}
		cells = append(cells, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParseBoard] failed to read board")
	}
	return NewBoard(cells)
}

// LoadBoard reads a board from path. Files ending in .json hold a 2-D
// integer array; anything else uses the ParseBoard text format.
func LoadBoard(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] failed to open file: %+v", path)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var raw [][]int
		if err = json.NewDecoder(f).Decode(&raw); err != nil {
			return nil, errors.Wrapf(err, "[LoadBoard] failed to unmarshal data from file: %+v", path)
		}
		return fromInts(raw)
	}
	return ParseBoard(f)
}

func fromInts(raw [][]int) (*Board, error) {
	cells := make([][]uint8, len(raw))
	for r, row := range raw {
		cells[r] = make([]uint8, len(row))
		for c, v := range row {
			if v != 0 && v != 1 {
				return nil, errors.Wrapf(ErrInvalidCell, "[fromInts] value %d at (%d,%d)", v, r, c)
			}
			cells[r][c] = uint8(v)
		}
	}
	return NewBoard(cells)
}
