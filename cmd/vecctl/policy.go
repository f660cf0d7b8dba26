package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/growarray/vector"
)

// policyFlags holds the growth policy selected on the command line.
type policyFlags struct {
	mode        string
	factor      int
	minCapacity int
}

func addPolicyFlags(cmd *cobra.Command, pf *policyFlags) {
	cmd.Flags().StringVar(&pf.mode, "mode", "multiplicative", "Growth mode: multiplicative or linear")
	cmd.Flags().IntVar(&pf.factor, "factor", 0, "Growth factor (multiplier or increment); 0 uses the mode default")
	cmd.Flags().IntVar(&pf.minCapacity, "min", 0, "First capacity in multiplicative mode; 0 uses the default")
}

func (pf policyFlags) policy() (vector.Policy, error) {
	mode, err := vector.ParseGrowthMode(pf.mode)
	if err != nil {
		return vector.Policy{}, err
	}
	p := vector.Policy{
		Mode:        mode,
		Factor:      pf.factor,
		MinCapacity: pf.minCapacity,
	}
	if err := p.Validate(); err != nil {
		return vector.Policy{}, err
	}
	return p, nil
}
