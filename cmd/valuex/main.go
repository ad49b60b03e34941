package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brtrx/values-explorer-sub000/internal/api"
	"github.com/brtrx/values-explorer-sub000/internal/archetype"
	"github.com/brtrx/values-explorer-sub000/internal/catalog"
	"github.com/brtrx/values-explorer-sub000/internal/clarify"
	"github.com/brtrx/values-explorer-sub000/internal/llm"
	"github.com/brtrx/values-explorer-sub000/internal/polarity"
	"github.com/brtrx/values-explorer-sub000/internal/profile"
	"github.com/brtrx/values-explorer-sub000/internal/render"
	"github.com/brtrx/values-explorer-sub000/internal/schema"
	"github.com/brtrx/values-explorer-sub000/internal/scoring"
	"github.com/brtrx/values-explorer-sub000/internal/sensitivity"
	"github.com/brtrx/values-explorer-sub000/internal/tension"
)

func main() {
	root := &cobra.Command{
		Use:   "valuex",
		Short: "Carrier and polarity analysis for Schwartz value profiles",
	}

	root.AddCommand(
		newSensitivityCmd(),
		newClarifyCmd(),
		newTensionCmd(),
		newUpdateCmd(),
		newCompareCmd(),
		newArchetypeCmd(),
		newScenarioCmd(),
		newServeCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// output renders v as JSON or Markdown depending on the --json flag.
func output(cmd *cobra.Command, v any, markdown string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		b, err := render.RenderJSON(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), markdown)
	return nil
}

func newSensitivityCmd() *cobra.Command {
	var limit, topK int
	cmd := &cobra.Command{
		Use:   "sensitivity <profile.json>",
		Short: "Rank carriers by weighted sensitivity for one profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := profile.Load(args[0])
			if err != nil {
				return err
			}
			top := sensitivity.TopSensitive(f.Scores, limit, topK)
			tensions := sensitivity.TopInternalTension(f.Scores, limit)
			md := render.MarkdownSensitivity(f.Name, top) + render.MarkdownInternalTension(f.Name, tensions)
			return output(cmd, map[string]any{
				"top_sensitive":        top,
				"top_internal_tension": tensions,
			}, md)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 5, "number of carriers to report")
	cmd.Flags().IntVar(&topK, "contributors", sensitivity.DefaultTopContributors, "contributing values per carrier")
	cmd.Flags().Bool("json", false, "emit JSON instead of Markdown")
	return cmd
}

func newClarifyCmd() *cobra.Command {
	var maxCarriers int
	var minSpread float64
	cmd := &cobra.Command{
		Use:   "clarify <profile.json>",
		Short: "Select carriers that best differentiate undecided values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := profile.Load(args[0])
			if err != nil {
				return err
			}
			res, err := clarify.Analyze(f.Scores, f.Confidence, maxCarriers, minSpread)
			if err != nil {
				return err
			}
			return output(cmd, res, render.MarkdownClarification(res))
		},
	}
	cmd.Flags().IntVar(&maxCarriers, "max-carriers", 2, "maximum carriers to select")
	cmd.Flags().Float64Var(&minSpread, "min-spread", 0.5, "minimum polarity spread to qualify")
	cmd.Flags().Bool("json", false, "emit JSON instead of Markdown")
	return cmd
}

func newTensionCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "tension <valueA> <valueB>",
		Short: "Rank carriers by how oppositely they affect two values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			valueA := strings.ToUpper(args[0])
			valueB := strings.ToUpper(args[1])
			best, err := polarity.BestCarriersForTension(valueA, valueB, limit)
			if err != nil {
				return err
			}
			var sb strings.Builder
			fmt.Fprintf(&sb, "## Tension Carriers — %s vs %s\n\n", valueA, valueB)
			sb.WriteString("| Carrier | Polarity diff |\n|---|---|\n")
			for _, d := range best {
				fmt.Fprintf(&sb, "| %s | %+.2f |\n", d.Carrier.Name, d.PolarityDiff)
			}
			sb.WriteString("\n")
			return output(cmd, best, sb.String())
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 3, "number of carriers to report")
	cmd.Flags().Bool("json", false, "emit JSON instead of Markdown")
	return cmd
}

func newUpdateCmd() *cobra.Command {
	var carrierID string
	var scalePoint int
	var codes []string
	var out string
	cmd := &cobra.Command{
		Use:   "update <profile.json>",
		Short: "Apply a carrier response to a profile's scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := profile.Load(args[0])
			if err != nil {
				return err
			}
			strength, err := scoring.ResponseStrengthFromScale(scalePoint)
			if err != nil {
				return err
			}
			updated, err := scoring.UpdateScores(f.Scores, carrierID, strength, codes)
			if err != nil {
				return err
			}
			f.Scores = updated
			if out == "" {
				out = args[0]
			}
			if err := profile.Save(out, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %d values, wrote %s\n", len(codes), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&carrierID, "carrier", "", "carrier id the response is about")
	cmd.Flags().IntVar(&scalePoint, "answer", 3, "5-point scale answer (1 = strongly high pole, 5 = strongly low pole)")
	cmd.Flags().StringSliceVar(&codes, "values", nil, "value codes to update")
	cmd.Flags().StringVar(&out, "out", "", "output path (default: overwrite input)")
	_ = cmd.MarkFlagRequired("carrier")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var limit int
	var narrative bool
	cmd := &cobra.Command{
		Use:   "compare <profile.json> <profile.json> [more...]",
		Short: "Rank carriers by tension across two or more profiles",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles := make([]schema.Profile, 0, len(args))
			files := make([]profile.File, 0, len(args))
			for _, path := range args {
				f, err := profile.Load(path)
				if err != nil {
					return err
				}
				files = append(files, f)
				profiles = append(profiles, f.Profile())
			}
			top, err := tension.TopProfileTensionCarriers(profiles, limit)
			if err != nil {
				return err
			}
			if narrative {
				if len(files) != 2 {
					return fmt.Errorf("--narrative needs exactly 2 profiles, got %d", len(files))
				}
				cmp, err := llm.GenerateComparison(cmd.Context(), profiles[0], profiles[1], top, llmOptions(cmd))
				if err != nil {
					return err
				}
				return output(cmd, cmp, cmp.Summary+"\n")
			}
			return output(cmd, top, render.MarkdownProfileTension(top))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 5, "number of carriers to report")
	cmd.Flags().BoolVar(&narrative, "narrative", false, "generate a comparison narrative (needs an API key)")
	cmd.Flags().Bool("json", false, "emit JSON instead of Markdown")
	addLLMFlags(cmd)
	return cmd
}

func newArchetypeCmd() *cobra.Command {
	var category string
	var similarTo string
	var limit int
	cmd := &cobra.Command{
		Use:   "archetype <profile.json>",
		Short: "Match a profile against the archetype catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if similarTo != "" {
				a, err := archetype.ByName(similarTo)
				if err != nil {
					return err
				}
				similar := archetype.Similar(a, limit)
				return output(cmd, similar, render.MarkdownArchetypes(similar))
			}
			if len(args) != 1 {
				return fmt.Errorf("profile path required unless --similar-to is given")
			}
			f, err := profile.Load(args[0])
			if err != nil {
				return err
			}
			if category != "" {
				matches, err := archetype.Rank(f.Scores, category)
				if err != nil {
					return err
				}
				if limit < len(matches) {
					matches = matches[:limit]
				}
				return output(cmd, matches, render.MarkdownArchetypes(matches))
			}
			var best []schema.ArchetypeMatch
			for _, cat := range archetype.Categories() {
				m, err := archetype.BestForCategory(f.Scores, cat)
				if err != nil {
					return err
				}
				best = append(best, m)
			}
			return output(cmd, best, render.MarkdownArchetypes(best))
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "restrict to one category")
	cmd.Flags().StringVar(&similarTo, "similar-to", "", "rank archetypes similar to the named one instead")
	cmd.Flags().IntVar(&limit, "limit", 5, "number of matches to report")
	cmd.Flags().Bool("json", false, "emit JSON instead of Markdown")
	return cmd
}

func newScenarioCmd() *cobra.Command {
	var carrierID string
	cmd := &cobra.Command{
		Use:   "scenario <profile.json>",
		Short: "Generate a decision scenario around a carrier (needs an API key)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := profile.Load(args[0])
			if err != nil {
				return err
			}
			if carrierID == "" {
				// Default to the profile's most sensitive carrier.
				top := sensitivity.TopSensitive(f.Scores, 1, sensitivity.DefaultTopContributors)
				carrierID = top[0].Carrier.ID
			}
			sc, err := llm.GenerateScenario(cmd.Context(), f.Profile(), carrierID, llmOptions(cmd))
			if err != nil {
				return err
			}
			var sb strings.Builder
			fmt.Fprintf(&sb, "## %s\n\n%s\n\n**%s**\n\n", sc.Title, sc.Narrative, sc.Question)
			for _, o := range sc.Options {
				fmt.Fprintf(&sb, "- **%s** (%s pole): %s\n", o.Label, o.CarrierPole, o.Description)
			}
			sb.WriteString("\n")
			return output(cmd, sc, sb.String())
		},
	}
	cmd.Flags().StringVar(&carrierID, "carrier", "", "carrier id (default: most sensitive for the profile)")
	cmd.Flags().Bool("json", false, "emit JSON instead of Markdown")
	addLLMFlags(cmd)
	return cmd
}

func newServeCmd() *cobra.Command {
	var addr string
	var origins []string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine as a JSON API for the web frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.ErrOrStderr(), "listening on %s (%d values, %d carriers, %d archetypes)\n",
				addr, catalog.NumValues, catalog.NumCarriers, len(archetype.All()))
			return http.ListenAndServe(addr, api.NewRouter(origins))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringSliceVar(&origins, "cors-origin", []string{"http://localhost:3000"}, "allowed CORS origins")
	return cmd
}

func addLLMFlags(cmd *cobra.Command) {
	cmd.Flags().String("provider", "anthropic", "LLM provider: anthropic, openai, or google")
	cmd.Flags().String("model", "claude-sonnet-4-5", "model name")
	cmd.Flags().Int("max-tokens", 2048, "max response tokens")
	cmd.Flags().Float64("temperature", 0.7, "sampling temperature")
	cmd.Flags().Bool("debug", false, "print prompts to stderr")
}

func llmOptions(cmd *cobra.Command) llm.Options {
	providerName, _ := cmd.Flags().GetString("provider")
	model, _ := cmd.Flags().GetString("model")
	maxTokens, _ := cmd.Flags().GetInt("max-tokens")
	temperature, _ := cmd.Flags().GetFloat64("temperature")
	debug, _ := cmd.Flags().GetBool("debug")
	return llm.Options{
		Provider:    providerName,
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Debug:       debug,
	}
}
