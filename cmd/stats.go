package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/grades"
	"github.com/abhisek/mathquest/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show profile and recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		p, err := st.Profile(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("%s, level %d\n", grades.DisplayName(p.Grade), p.Level)
		fmt.Printf("EXP %d   total score %d   streak %d day(s)\n",
			p.Experience, p.TotalScore, p.StreakDays)
		if p.LastPlayedAt != nil {
			fmt.Printf("last played %s\n", p.LastPlayedAt.Format("2006-01-02 15:04"))
		}

		limit, _ := cmd.Flags().GetInt("limit")
		sessions, err := st.RecentSessions(ctx, limit)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("\nNo sessions played yet.")
			return nil
		}

		fmt.Println("\nRecent sessions:")
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tGRADE\tLEVEL\tSCORE\tRESULT")
		for _, s := range sessions {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d/%d\t%s\n",
				s.When.Format("01-02 15:04"), s.Grade, s.Level, s.Score, s.Total, s.Direction)
		}
		return w.Flush()
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent sessions to show")
}
