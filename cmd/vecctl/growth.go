package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/joshuapare/growarray/vector"
	"github.com/joshuapare/growarray/vector/alloc"
)

type growthStep struct {
	Append int   `json:"append"`
	OldCap int   `json:"old_cap"`
	NewCap int   `json:"new_cap"`
	Bytes  int64 `json:"bytes"`
}

type growthReport struct {
	Policy    string       `json:"policy"`
	Appends   int          `json:"appends"`
	Steps     []growthStep `json:"steps"`
	Reallocs  int          `json:"reallocs"`
	PeakBytes int64        `json:"peak_bytes"`
	FinalLen  int          `json:"final_len"`
	FinalCap  int          `json:"final_cap"`
	Refused   bool         `json:"refused"`
}

func init() {
	rootCmd.AddCommand(newGrowthCmd())
}

func newGrowthCmd() *cobra.Command {
	var (
		pf      policyFlags
		appends int
		budget  int
	)
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Print the capacity schedule of a growth policy",
		Long: `The growth command appends elements to a vector of 8-byte integers and
reports every reallocation together with the bytes charged for the block.

Example:
  vecctl growth --appends 1000
  vecctl growth --mode linear --factor 4 --appends 20
  vecctl growth --budget 4096 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrowth(pf, appends, budget)
		},
	}
	addPolicyFlags(cmd, &pf)
	cmd.Flags().IntVarP(&appends, "appends", "n", 100, "Number of elements to append")
	cmd.Flags().IntVar(&budget, "budget", 0, "Byte budget for the block (0 = unlimited)")
	return cmd
}

func runGrowth(pf policyFlags, appends, budget int) error {
	report, err := growthSchedule(pf, appends, budget)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(report)
	}

	printInfo("Policy: %s\n", report.Policy)
	printInfo("%8s %12s %12s %14s\n", "append", "old cap", "new cap", "bytes")
	for _, s := range report.Steps {
		printInfo("%8d %12d %12d %14d\n", s.Append, s.OldCap, s.NewCap, s.Bytes)
	}
	printInfo("\nAppended: %d of %d\n", report.FinalLen, report.Appends)
	printInfo("Capacity: %d (slack %d)\n", report.FinalCap, report.FinalCap-report.FinalLen)
	printInfo("Reallocs: %d\n", report.Reallocs)
	printInfo("Peak:     %d bytes\n", report.PeakBytes)
	if report.Refused {
		printInfo("Growth refused by the %d byte budget\n", budget)
	}
	return nil
}

// growthSchedule appends n elements and records every capacity change.
func growthSchedule(pf policyFlags, n, budget int) (*growthReport, error) {
	if n < 0 {
		return nil, fmt.Errorf("appends must not be negative: %d", n)
	}
	p, err := pf.policy()
	if err != nil {
		return nil, err
	}

	var inner alloc.Allocator
	if budget > 0 {
		inner = alloc.NewLimit(nil, budget)
	}
	ta := alloc.NewTracking(inner)

	v, err := vector.New[int64](&vector.Options{Policy: p, Allocator: ta})
	if err != nil {
		return nil, err
	}
	defer v.Release()

	report := &growthReport{
		Policy:  p.String(),
		Appends: n,
	}
	for i := 1; i <= n; i++ {
		oldCap := v.Cap()
		if err := v.PushBack(int64(i)); err != nil {
			if errors.Is(err, vector.ErrAllocationFailure) {
				slog.Debug("growth refused", "append", i, "cap", oldCap, "error", err)
				report.Refused = true
				break
			}
			return nil, err
		}
		if newCap := v.Cap(); newCap != oldCap {
			step := growthStep{
				Append: i,
				OldCap: oldCap,
				NewCap: newCap,
				Bytes:  ta.Stats().LiveBytes,
			}
			slog.Debug("grow", "append", step.Append, "old_cap", step.OldCap, "new_cap", step.NewCap)
			report.Steps = append(report.Steps, step)
		}
	}

	st := ta.Stats()
	report.Reallocs = st.ReallocCalls
	report.PeakBytes = st.PeakBytes
	report.FinalLen = v.Len()
	report.FinalCap = v.Cap()
	return report, nil
}
