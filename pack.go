package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"autoPallet/config"
	"autoPallet/metrics"
	"autoPallet/models"
	"autoPallet/packer"
	"autoPallet/utils"
)

type packFlags struct {
	pallet   string
	boxes    []string
	catalog  string
	format   string
	out      string
	xlsx     string
	chart    string
	verify   bool
	maxCands int
}

// parseBox 解析 "id:宽x高x深:数量"
func parseBox(arg string) (models.BoxType, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 {
		return models.BoxType{}, fmt.Errorf("box %q: want id:WxHxD:qty", arg)
	}
	w, h, d, ok := utils.ParseSize(parts[1])
	if !ok {
		return models.BoxType{}, fmt.Errorf("box %q: bad size %q", arg, parts[1])
	}
	qty, err := strconv.Atoi(parts[2])
	if err != nil {
		return models.BoxType{}, fmt.Errorf("box %q: bad qty: %w", arg, err)
	}
	return models.BoxType{ID: parts[0], Width: w, Height: h, Depth: d, Qty: qty}, nil
}

func loadBoxes(f packFlags, cfg config.Config) ([]models.BoxType, error) {
	var boxes []models.BoxType
	if f.catalog != "" {
		read, err := utils.ReadBoxCatalogFile(f.catalog, cfg.Excel)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", f.catalog, err)
		}
		boxes = append(boxes, read...)
	}
	for _, arg := range f.boxes {
		b, err := parseBox(arg)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, b)
	}
	return boxes, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func printSummary(w io.Writer, sol models.Solution) {
	res := sol.Result
	titleColor.Fprintln(w, "Best arrangement")
	fmt.Fprintf(w, "  %-12s %s\n", "run", sol.RunID)
	fmt.Fprintf(w, "  %-12s %g×%g×%g\n", "orientation", sol.Oriented.Width, sol.Oriented.Height, sol.Oriented.Depth)
	fmt.Fprintf(w, "  %-12s %g\n", "layer height", res.LayerHeight)
	fmt.Fprintf(w, "  %-12s %d\n", "layers", len(res.Layers))
	fmt.Fprintf(w, "  %-12s %d\n", "boxes", len(res.Placements))
	fmt.Fprintf(w, "  %-12s %.2f%%\n", "utilization", res.Utilization*100)
}

func newPackCmd() *cobra.Command {
	var f packFlags
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack a box catalog into a pallet and print the best arrangement",
		Example: `  autoPallet pack --pallet 84x96x104 --box A:20x10x15:10
  autoPallet pack --pallet 120x150x100 --catalog boxes.xlsx --xlsx result.xlsx --chart result.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-candidates") {
				cfg.Search.MaxCandidates = f.maxCands
			}
			log := newLogger(cfg.Log.Level, false)

			w, h, d, ok := utils.ParseSize(f.pallet)
			if !ok {
				return fmt.Errorf("bad --pallet %q: want WxHxD", f.pallet)
			}
			pallet := models.Pallet{Width: w, Height: h, Depth: d}
			boxes, err := loadBoxes(f, cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			sol, err := packer.Search(cmd.Context(), pallet, boxes, packer.Options{
				Concurrency:   cfg.Search.Concurrency,
				MaxCandidates: cfg.Search.MaxCandidates,
				Logger:        log,
			})
			metrics.ObserveSearch(sol, time.Since(start), err)
			if err != nil {
				return err
			}
			if f.verify {
				if err := packer.Verify(sol.Oriented, sol.Result); err != nil {
					return fmt.Errorf("verify: %w", err)
				}
			}

			printSummary(cmd.ErrOrStderr(), sol)

			if f.xlsx != "" {
				if err := writeFile(f.xlsx, func(w io.Writer) error { return utils.WriteSolution(w, sol) }); err != nil {
					return err
				}
			}
			if f.chart != "" {
				if err := writeFile(f.chart, func(w io.Writer) error { return utils.RenderChart(w, sol) }); err != nil {
					return err
				}
			}
			if f.out != "" {
				return writeFile(f.out, func(w io.Writer) error { return utils.Encode(w, f.format, sol) })
			}
			return utils.Encode(cmd.OutOrStdout(), f.format, sol)
		},
	}

	cmd.Flags().StringVarP(&f.pallet, "pallet", "p", "", "pallet size WxHxD")
	cmd.Flags().StringArrayVarP(&f.boxes, "box", "b", nil, "box type id:WxHxD:qty (repeatable)")
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "Excel box catalog")
	cmd.Flags().StringVarP(&f.format, "format", "f", utils.FormatJSON, "output format: json, yaml or msgpack")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write the encoded result to a file instead of stdout")
	cmd.Flags().StringVar(&f.xlsx, "xlsx", "", "also export the result as an Excel workbook")
	cmd.Flags().StringVar(&f.chart, "chart", "", "also render an HTML utilization chart")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "re-check the result for overlaps before writing")
	cmd.Flags().IntVar(&f.maxCands, "max-candidates", 0, "layer heights tried per orientation, 0 for all")
	_ = cmd.MarkFlagRequired("pallet")
	return cmd
}
