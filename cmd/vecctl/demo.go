package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/growarray/vector"
)

type demoResult struct {
	Policy   string `json:"policy"`
	Capacity int    `json:"capacity"`
	Size     int    `json:"size"`
	Elements []int  `json:"elements"`
}

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	var pf policyFlags
	cmd := &cobra.Command{
		Use:   "demo [values...]",
		Short: "Push values, pop the last one and print the vector",
		Long: `The demo command appends the given integers (10 20 30 by default),
removes the last one, and prints capacity, size and contents.

Example:
  vecctl demo
  vecctl demo 1 2 3 4 5 --mode linear`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(pf, args)
		},
	}
	addPolicyFlags(cmd, &pf)
	return cmd
}

func runDemo(pf policyFlags, args []string) error {
	values := []int{10, 20, 30}
	if len(args) > 0 {
		values = values[:0]
		for _, a := range args {
			x, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", a, err)
			}
			values = append(values, x)
		}
	}

	res, err := demo(pf, values)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("policy  : %s\n", res.Policy)
	printInfo("capacity: %d\n", res.Capacity)
	printInfo("size    : %d\n", res.Size)
	for i, x := range res.Elements {
		printInfo("v[%d] = %d\n", i, x)
	}
	return nil
}

func demo(pf policyFlags, values []int) (*demoResult, error) {
	p, err := pf.policy()
	if err != nil {
		return nil, err
	}
	v, err := vector.New[int](&vector.Options{Policy: p})
	if err != nil {
		return nil, err
	}
	defer v.Release()

	for _, x := range values {
		if err := v.PushBack(x); err != nil {
			return nil, fmt.Errorf("push %d: %w", x, err)
		}
	}
	if err := v.PopBack(); err != nil {
		return nil, fmt.Errorf("pop: %w", err)
	}

	res := &demoResult{
		Policy:   p.String(),
		Capacity: v.Cap(),
		Size:     v.Len(),
		Elements: make([]int, 0, v.Len()),
	}
	for it := v.Begin(); it != v.End(); it = it.Next() {
		res.Elements = append(res.Elements, it.Value())
	}
	return res, nil
}
