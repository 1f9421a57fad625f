package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var showAll bool
var longFormat bool
var oneline bool
var rawBytes bool
var showGroup bool
var useModified bool
var sortKey string
var reverseOrder bool
var ignorePatterns []string
var useGitIgnore bool
var colorMode string
var profile string
var watch bool
var verbose bool

func currentOptions() Options {
	return Options{
		All:      showAll,
		Long:     longFormat,
		Oneline:  oneline,
		Bytes:    rawBytes,
		Group:    showGroup,
		Modified: useModified,
		Reverse:  reverseOrder,
		Sort:     sortKey,
	}
}

var rootCmd = &cobra.Command{
	Use:   "eax [directory]",
	Short: "Eax lists directory entries with colors and details",
	Long: `Eax lists the entries of a directory, classifying each one as a folder,
executable, important file, image or normal file and styling it accordingly.
The long form adds permissions, size, owner and timestamp columns.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		defaults, err := loadDefaults(dir, profile)
		if err != nil {
			return fmt.Errorf("failed to load defaults: %w", err)
		}
		if err := applyDefaults(cmd.Flags(), defaults); err != nil {
			return err
		}

		log := newLogger(cmd.ErrOrStderr(), verbose)

		styler, err := newStyler(colorMode, os.Stdout)
		if err != nil {
			return err
		}

		patterns := append(append([]string{}, defaults.Ignore...), ignorePatterns...)
		filter, err := NewFilter(dir, useGitIgnore, patterns)
		if err != nil {
			return fmt.Errorf("failed to create filter: %w", err)
		}

		opts := currentOptions()
		renderer := NewRenderer(styler, log)
		list := func() error {
			output, err := listDirectory(dir, opts, filter, renderer, log)
			if err != nil {
				return fmt.Errorf("failed to list directory: %w", err)
			}
			return printListing(cmd.OutOrStdout(), output)
		}

		if err := list(); err != nil {
			return err
		}
		if !watch {
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchDirectory(ctx, dir, log, func() error {
			if _, err := io.WriteString(cmd.OutOrStdout(), "\n"); err != nil {
				return err
			}
			return list()
		})
	},
}

func printListing(w io.Writer, output string) error {
	if output == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, output)
	return err
}

func init() {
	rootCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Include entries starting with a dot")
	rootCmd.Flags().BoolVarP(&longFormat, "long", "l", false, "Show permissions, size, owner and timestamp (implies --all)")
	rootCmd.Flags().BoolVarP(&oneline, "oneline", "1", false, "Print one entry per line")
	rootCmd.Flags().BoolVarP(&rawBytes, "bytes", "b", false, "Show sizes in bytes (only used with --long)")
	rootCmd.Flags().BoolVarP(&showGroup, "group", "g", false, "Show group name and group/other permissions (only used with --long)")
	rootCmd.Flags().BoolVarP(&useModified, "modified", "m", false, "Show modification time instead of change time (only used with --long)")
	rootCmd.Flags().StringVar(&sortKey, "sort", sortByName, "Sort key; only \"name\" sorts, anything else keeps directory order")
	rootCmd.Flags().BoolVarP(&reverseOrder, "reverse", "r", false, "Reverse the sort order")
	rootCmd.Flags().StringSliceVarP(&ignorePatterns, "ignore", "I", nil, "Hide entries whose name matches the glob pattern (repeatable)")
	rootCmd.Flags().BoolVar(&useGitIgnore, "gitignore", false, "Hide entries ignored by the directory's .gitignore")
	rootCmd.Flags().StringVar(&colorMode, "color", colorModeAuto, "When to use colors: auto, always, or never")
	rootCmd.Flags().StringVar(&profile, "profile", "default", "Profile to use from .eax defaults files")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "List again whenever the directory changes")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
