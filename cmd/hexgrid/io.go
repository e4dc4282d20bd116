package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andreiashu/hexgrid"
)

// readCells parses cells from args, from a cell set file when inPath is set,
// or from whitespace separated stdin when neither is given.
func readCells(cmd *cobra.Command, args []string, inPath string) ([]hexgrid.Cell, error) {
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return nil, fmt.Errorf("open cell set: %w", err)
		}
		defer f.Close()
		return hexgrid.ReadCellSet(f)
	}

	var tokens []string
	if len(args) > 0 {
		tokens = args
	} else {
		sc := bufio.NewScanner(cmd.InOrStdin())
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			tokens = append(tokens, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	cells := make([]hexgrid.Cell, 0, len(tokens))
	for _, t := range tokens {
		c, err := hexgrid.ParseCell(strings.TrimSpace(t))
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, nil
}

// writeCells prints cells one per line, or as a JSON array of strings.
func (a *app) writeCells(w io.Writer, cells []hexgrid.Cell) error {
	if a.output == "json" {
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = c.String()
		}
		return writeJSON(w, out)
	}
	bw := bufio.NewWriter(w)
	for _, c := range cells {
		fmt.Fprintln(bw, c)
	}
	return bw.Flush()
}

// writeCellSetFile stores cells in the compressed cell set format.
func writeCellSetFile(path string, cells []hexgrid.Cell) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cell set: %w", err)
	}
	if err := hexgrid.WriteCellSet(f, cells); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
