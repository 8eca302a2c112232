package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tiny-arcade/internal/assets"
	"github.com/vovakirdan/tiny-arcade/internal/codec"
)

var flagAssetsYAML bool

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Report compressed tile sizes",
	Long: `Encode every platformer tile with the tile alphabet and report raw and
packed sizes plus the code length of each alphabet symbol.

Exits non-zero if any tile uses a byte the alphabet has no code for.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		report := buildAssetReport(assets.TileAlphabet, assets.TileSet())
		if err := writeAssetReport(cmd.OutOrStdout(), report, flagAssetsYAML); err != nil {
			return err
		}
		if report.Violations > 0 {
			return fmt.Errorf("%d block(s) leave the alphabet", report.Violations)
		}
		return nil
	},
}

func init() {
	assetsCmd.Flags().BoolVar(&flagAssetsYAML, "yaml", false, "Print the report as YAML")
}

type symbolReport struct {
	Symbol string `yaml:"symbol"`
	Bits   int    `yaml:"bits"`
	Count  int    `yaml:"count"`
}

type blockReport struct {
	Name   string `yaml:"name"`
	Raw    int    `yaml:"raw_bytes"`
	Bits   int    `yaml:"bits"`
	Packed int    `yaml:"packed_bytes"`
	Error  string `yaml:"error,omitempty"`
}

type assetReport struct {
	Alphabet   []symbolReport `yaml:"alphabet"`
	Optimal    bool           `yaml:"optimal"` // the short code sits on a most frequent byte
	Blocks     []blockReport  `yaml:"blocks"`
	RawTotal   int            `yaml:"raw_total"`
	Packed     int            `yaml:"packed_total"`
	Violations int            `yaml:"violations"`
}

func buildAssetReport(a *codec.Alphabet, blocks []assets.NamedBlock) assetReport {
	var r assetReport
	raws := make([][]byte, len(blocks))
	for i, nb := range blocks {
		raws[i] = nb.Raw
	}
	freq := codec.Frequencies(raws...)
	var counts [256]int
	for _, f := range freq {
		counts[f.Symbol] = f.Count
	}

	for _, s := range a.Symbols() {
		r.Alphabet = append(r.Alphabet, symbolReport{
			Symbol: fmt.Sprintf("0x%02x", s),
			Bits:   a.CodeLen(s),
			Count:  counts[s],
		})
	}
	r.Optimal = len(freq) == 0 || (a.Size() > 0 && counts[a.Symbols()[0]] == freq[0].Count)

	for _, nb := range blocks {
		br := blockReport{Name: nb.Name, Raw: len(nb.Raw)}
		bits, err := a.EncodedBits(nb.Raw)
		if err != nil {
			br.Error = err.Error()
			r.Violations++
		} else {
			br.Bits = bits
			br.Packed = (bits + 7) / 8
		}
		r.RawTotal += br.Raw
		r.Packed += br.Packed
		r.Blocks = append(r.Blocks, br)
	}
	return r
}

func writeAssetReport(w io.Writer, r assetReport, asYAML bool) error {
	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintln(w, "Alphabet:")
	for _, s := range r.Alphabet {
		fmt.Fprintf(w, "  %-5s %d bits  %4d uses\n", s.Symbol, s.Bits, s.Count)
	}
	if !r.Optimal {
		fmt.Fprintln(w, "  the 1-bit code is not on the most frequent byte")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-14s %5s %6s %6s\n", "Block", "Raw", "Bits", "Packed")
	for _, b := range r.Blocks {
		if b.Error != "" {
			fmt.Fprintf(w, "  %-14s %5d  error: %s\n", b.Name, b.Raw, b.Error)
			continue
		}
		fmt.Fprintf(w, "  %-14s %5d %6d %6d\n", b.Name, b.Raw, b.Bits, b.Packed)
	}
	fmt.Fprintf(w, "  %-14s %5d %6s %6d\n", "total", r.RawTotal, "", r.Packed)
	return nil
}
