// Command tasrif conjugates a sound triliteral Arabic verb on the
// command line.
//
//	tasrif --verb "فَعَلَ"
//	tasrif --verb "كَتَبَ" --tense present --bab f_d --mood i
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	tasrif "github.com/cours-de-arabe/tasrif"
)

func main() {
	var (
		verb     string
		tenseID  string
		babID    string
		moodID   string
		joiner   string
		reversed bool
	)

	cmd := &cobra.Command{
		Use:   "tasrif",
		Short: "Conjugate sound triliteral Arabic verbs",
		Long: "Conjugate 3-letter Arabic verbs (with harakat). Provide the past-tense\n" +
			"form (the هو form) including diacritics, and choose tense, pattern (bab)\n" +
			"and mood for present-tense conjugation.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tense, err := tasrif.ParseTense(tenseID)
			if err != nil {
				return err
			}
			var opts tasrif.Options
			if tense == tasrif.Present {
				if opts.Bab, err = tasrif.ParseBab(babID); err != nil {
					return err
				}
				if opts.Mood, err = tasrif.ParseMood(moodID); err != nil {
					return err
				}
			}

			// Arguments arrive in logical reading order; ParseRoot
			// consumes surface-captured order.
			root, err := tasrif.ParseRoot(tasrif.Reverse(verb))
			if err != nil {
				return err
			}
			res, err := tasrif.Conjugate(root, tense, opts)
			if err != nil {
				return err
			}
			printTable(cmd, res, joiner, reversed)
			return nil
		},
	}

	cmd.Flags().StringVar(&verb, "verb", "", "past tense verb (3 letters with harakat), e.g. ذَهَبَ")
	cmd.Flags().StringVar(&tenseID, "tense", "past", "tense: past or present")
	cmd.Flags().StringVar(&babID, "bab", "f_f", "present pattern (bab): f_f, f_d, f_k, k_f, d_d, k_k")
	cmd.Flags().StringVar(&moodID, "mood", "indicative", "present mood: indicative (i), subjunctive (s) or jussive (j)")
	cmd.Flags().StringVar(&joiner, "joiner", ", ", "joiner for cells that aggregate several rows")
	cmd.Flags().BoolVar(&reversed, "reverse", false, "reverse output strings for terminals without right-to-left rendering")
	_ = cmd.MarkFlagRequired("verb")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// printTable lays the grouped paradigm out as a plural/dual/singular
// table in the fixed class order.
func printTable(cmd *cobra.Command, res *tasrif.Result, joiner string, reversed bool) {
	display := func(s string) string {
		if s == "" {
			return "-------"
		}
		if reversed {
			return tasrif.Reverse(s)
		}
		return s
	}

	grouped := tasrif.GroupJoined(res.Forms[:], joiner)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, display(res.Title))
	fmt.Fprintln(out, strings.Repeat("=", 72))
	fmt.Fprintf(out, "%-24s | %-16s | %-16s | %s\n", "Plural", "Dual", "Singular", "Person")
	fmt.Fprintln(out, strings.Repeat("-", 72))
	for _, pg := range tasrif.DisplayOrder {
		cells := grouped[pg]
		fmt.Fprintf(out, "%-24s | %-16s | %-16s | %s\n",
			display(cells[tasrif.Plural]),
			display(cells[tasrif.Dual]),
			display(cells[tasrif.Singular]),
			pg)
	}
	fmt.Fprintln(out, strings.Repeat("=", 72))
}
