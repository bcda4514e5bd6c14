package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tidytab/join"
	"github.com/katalvlaran/tidytab/reshape"
)

func addCommands(root *cobra.Command) {
	// Inspect
	cmd := &cobra.Command{
		Use:   "show input",
		Short: "Read a table and print it",
		Args:  cobra.ExactArgs(1),
		Run:   show}
	cmd.Flags().Int("max-rows", 20, "rows to print, 0 for all")
	cmd.Flags().Int("max-width", 0, "cap on cell width, 0 for none")
	cmd.Flags().Bool("kinds", true, "print column kinds under the header")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "view input",
		Short: "Browse a table interactively",
		Args:  cobra.ExactArgs(1),
		Run:   view}
	root.AddCommand(cmd)

	// Reshape
	cmd = &cobra.Command{
		Use:   "longer input",
		Short: "Pivot value columns into name/value rows",
		Args:  cobra.ExactArgs(1),
		Run:   longer}
	cmd.Flags().StringArray("id", nil, "id columns kept as they are")
	cmd.Flags().String("names-to", reshape.DefaultNamesTo, "column receiving the old column names")
	cmd.Flags().String("values-to", reshape.DefaultValuesTo, "column receiving the old cells")
	cmd.Flags().Bool("convert", false, "re-infer the kind of the names column")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "wider input",
		Short: "Pivot name/value rows back into columns",
		Args:  cobra.ExactArgs(1),
		Run:   wider}
	cmd.Flags().String("names-from", reshape.DefaultNamesTo, "column holding the new column names")
	cmd.Flags().String("values-from", reshape.DefaultValuesTo, "column holding the new cells")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "separate input column",
		Short: "Split one text column into several",
		Args:  cobra.ExactArgs(2),
		Run:   separate}
	cmd.Flags().StringArray("into", nil, "names of the new columns (required)")
	cmd.MarkFlagRequired("into")
	cmd.Flags().String("sep", reshape.DefaultSeparator, "separator to split on")
	cmd.Flags().String("extra", "strict", "piece-count policy, 'strict', 'fill' or 'merge'")
	cmd.Flags().Bool("convert", false, "re-infer the kinds of the new columns")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "unite input name column+",
		Short: "Merge columns into one text column",
		Args:  cobra.MinimumNArgs(3),
		Run:   unite}
	cmd.Flags().String("sep", reshape.DefaultSeparator, "separator between the glued cells")
	root.AddCommand(cmd)

	// Join
	cmd = &cobra.Command{
		Use:   "join left right",
		Short: "Join two tables on a shared key",
		Args:  cobra.ExactArgs(2),
		Run:   joinTables}
	cmd.Flags().String("mode", "inner", "'inner', 'left', 'right', 'full', 'semi' or 'anti'")
	cmd.Flags().StringArray("on", nil, "key columns (default: every shared name)")
	cmd.Flags().String("suffix", join.DefaultSuffix, "suffix for colliding right-side names")
	root.AddCommand(cmd)

	// Set operations
	cmd = &cobra.Command{
		Use:   "intersect a b",
		Short: "Rows present in both tables",
		Args:  cobra.ExactArgs(2),
		Run:   intersect}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "union a b",
		Short: "Rows present in either table",
		Args:  cobra.ExactArgs(2),
		Run:   union}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "setdiff a b",
		Short: "Rows of the first table missing from the second",
		Args:  cobra.ExactArgs(2),
		Run:   setdiff}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "setequal a b",
		Short: "Whether two tables hold the same set of rows",
		Args:  cobra.ExactArgs(2),
		Run:   setequal}
	root.AddCommand(cmd)

	// Columns
	cmd = &cobra.Command{
		Use:   "convert input column kind",
		Short: "Convert a column to 'string', 'number', 'int' or 'bool'",
		Args:  cobra.ExactArgs(3),
		Run:   convert}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "distinct input",
		Short: "Drop duplicated rows",
		Args:  cobra.ExactArgs(1),
		Run:   distinct}
	root.AddCommand(cmd)
}

func main() {
	var root = &cobra.Command{Use: "tidytab"}
	root.PersistentFlags().String("config", DefaultConfigFile, "config file")
	root.PersistentFlags().String("profile", DefaultConfigProfile, "config profile")
	root.PersistentFlags().StringP("output", "o", "", "output file (default: stdout)")
	root.PersistentFlags().String("format", "", "table format, 'csv' or 'json' (default: by extension)")
	root.PersistentFlags().String("delimiter", "", "CSV field delimiter, '\\t' for tab")
	root.PersistentFlags().String("na", "", "CSV spelling of absent cells")
	root.PersistentFlags().BoolP("verbose", "v", false, "log debug detail to stderr")
	addCommands(root)
	root.Execute()
}
