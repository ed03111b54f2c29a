package main

import (
	"fmt"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"mxtools/internal/desktop"
	"mxtools/internal/menu"
	"mxtools/internal/models"
	"mxtools/internal/search"
)

var (
	flagListSearch string
	flagListIcons  bool
	flagDryRun     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the tools grouped by category",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var hideCmd = &cobra.Command{
	Use:   "hide",
	Short: "Hide the tools from the desktop menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMenu(cmd, true)
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the tools in the desktop menu again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMenu(cmd, false)
	},
}

var runCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Launch a tool by its display name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRun,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	listCmd.Flags().StringVar(&flagListSearch, "search", "", "Only list tools matching this text")
	listCmd.Flags().BoolVar(&flagListIcons, "icons", false, "Show the resolved icon file")
	for _, c := range []*cobra.Command{hideCmd, showCmd} {
		c.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the changes as a diff without applying them")
	}
	rootCmd.AddCommand(listCmd, hideCmd, showCmd, runCmd, versionCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	a := cliApp(cmd)
	idx, _ := a.scanner.Scan(cmd.Context())
	idx = search.Filter(idx, flagListSearch)

	out := cmd.OutOrStdout()
	if idx.Empty() {
		fmt.Fprintf(out, "No tools found in %s\n", a.scanner.Dir())
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, cat := range idx.NonEmpty() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", cat.Label())
		for _, rec := range idx.Records(cat) {
			line := "  " + desktop.DisplayName(rec.Name) + "\t" + rec.Comment + "\t" + rec.Path
			if flagListIcons {
				line += "\t" + emptyAsNA(a.icons.Resolve(cmd.Context(), rec.Icon))
			}
			fmt.Fprintln(w, line)
		}
	}
	return w.Flush()
}

func runMenu(cmd *cobra.Command, hide bool) error {
	a := cliApp(cmd)
	_, listing := a.scanner.Scan(cmd.Context())
	changes := a.menu.Plan(listing.Paths(), hide)

	out := cmd.OutOrStdout()
	if flagDryRun {
		fmt.Fprint(out, menu.Render(changes))
		return nil
	}
	if err := a.menu.Apply(cmd.Context(), changes); err != nil {
		return fmt.Errorf("update menu: %w", err)
	}

	verb := "Hid"
	if !hide {
		verb = "Restored"
	}
	fmt.Fprintf(out, "%s %d tools in %s\n", verb, len(changes), a.menu.Dir())
	return nil
}

func runRun(cmd *cobra.Command, args []string) error {
	a := cliApp(cmd)
	idx, _ := a.scanner.Scan(cmd.Context())

	name := strings.Join(args, " ")
	rec, ok := findByName(idx, name)
	if !ok {
		return fmt.Errorf("no tool named %q", name)
	}
	a.launcher.Run(cmd.Context(), rec)
	return nil
}

// findByName matches a display name case-insensitively
func findByName(idx *models.Index, name string) (models.Record, bool) {
	fold := cases.Fold()
	want := fold.String(name)
	for _, rec := range idx.All() {
		if fold.String(desktop.DisplayName(rec.Name)) == want {
			return rec, true
		}
	}
	return models.Record{}, false
}

func runVersion(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Version:    %s\n", version)
	fmt.Fprintf(out, "Build Time: %s\n", emptyAsNA(buildTime))
	fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
	fmt.Fprintf(out, "OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}

func emptyAsNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
