// qcheck is a small demonstration binary: it runs a handful of built-in
// properties against this module's own driver and reports what it
// finds. It is not a generic test runner: it does not discover or
// register user properties.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/BurntSushi/quickcheck"
	"github.com/BurntSushi/quickcheck/cmd/qcheck/demo"
)

var rootCmd = &cobra.Command{
	Use:   "qcheck",
	Short: "Run demonstration properties through the quickcheck driver",
	RunE:  run,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int("tests", 100, "number of passing trials to collect")
	flags.Int("max-tests", 1000, "cap on total generation attempts")
	flags.Int64("seed", 0, "fix the random source (0 means draw a fresh seed)")
	flags.Bool("verbose", false, "log progress as trials run")

	bindFlag(flags, "tests")
	bindFlag(flags, "max-tests")
	bindFlag(flags, "seed")
	bindFlag(flags, "verbose")
}

func bindFlag(flags *pflag.FlagSet, name string) {
	if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
		panic(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts := []quickcheck.Opt{
		quickcheck.WithTests(viper.GetInt("tests")),
		quickcheck.WithMaxTests(viper.GetInt("max-tests")),
		quickcheck.WithVerbose(viper.GetBool("verbose")),
	}
	if seed := viper.GetInt64("seed"); seed != 0 {
		opts = append(opts, quickcheck.WithSeed(seed))
	}
	cfg := quickcheck.New(opts...)

	failed := false
	for _, c := range demo.Cases() {
		out := quickcheck.CheckWith(cfg, c.Property)
		status := "ok"
		if out.IsFailure() {
			status = "FAILED"
			failed = true
		}
		fmt.Printf("%-28s %s", c.Name, status)
		if out.IsFailure() {
			fmt.Printf("  counter-example %s: %s", out.Witness, out.Reason)
		}
		fmt.Println()
	}
	if failed {
		return fmt.Errorf("one or more demonstration properties failed")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
