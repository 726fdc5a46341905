package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"travel/internal/domain"
	"travel/internal/render"
)

var (
	searchJSON bool
	searchHTML bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Resolve a single query and print the matching cards",
	Long: `Resolves one query against the recommendation document.
"beach", "temple" and "country" (or their plurals) list a whole category;
any other text is matched against country names. At most 10 cards are shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output records as JSON")
	searchCmd.Flags().BoolVar(&searchHTML, "html", false, "output records as HTML cards")
	searchCmd.MarkFlagsMutuallyExclusive("json", "html")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	rec, cfg, err := openRecommender(cmd.Context())
	if err != nil {
		return err
	}

	out := rec.Query(args[0])
	switch out.Kind {
	case domain.OutcomeDataNotLoaded:
		if rec.LoadErr() == nil {
			return domain.ErrDataNotLoaded
		}
		return fmt.Errorf("%w: %w", domain.ErrDataNotLoaded, rec.LoadErr())
	case domain.OutcomeEmpty, domain.OutcomeNoMatch:
		if searchJSON {
			return outputSearchJSON(cmd, []domain.ResultRecord{})
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.Message(out.Kind))
		return nil
	}

	switch {
	case searchJSON:
		return outputSearchJSON(cmd, out.Records)
	case searchHTML:
		fmt.Fprint(cmd.OutOrStdout(), render.HTMLCards(out.Records))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), render.TextCards(out.Records, cfg.UI.CardWidth))
		fmt.Fprintln(cmd.OutOrStdout(), render.CountLabel(len(out.Records)))
	}
	return nil
}

func outputSearchJSON(cmd *cobra.Command, records []domain.ResultRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
