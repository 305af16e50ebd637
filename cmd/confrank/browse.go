// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/conference-rank/internal/ordering"
	"github.com/pdiddy/conference-rank/internal/render"
	"github.com/pdiddy/conference-rank/internal/view"
	"github.com/pdiddy/conference-rank/pkg/types"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the snapshot interactively",
	Long: `Browse loads the snapshot once and reads commands from stdin, one per
line. Every command that changes the view reprints the current page.

  search TEXT      match name or acronym (empty clears)
  year Y           exact year (- clears)
  category NAME    exact category (- clears)
  class C          Top10, Top20, General, or none (- clears)
  clear            remove every filter
  sort KEY         sort by KEY; repeating the key flips the order
  next, prev       move one page
  page N           jump to page N
  show ACRONYM     print one conference in full
  stats            summarize the whole snapshot
  options          list filter values
  help             print this list
  quit             leave`,
	RunE: runBrowseCmd,
}

func runBrowseCmd(cmd *cobra.Command, args []string) error {
	ctl, err := openSession(cmd.Context(), types.DefaultViewState())
	if err != nil {
		return err
	}
	r, err := newRenderer()
	if err != nil {
		return err
	}
	return runBrowse(ctl, r, cmd.InOrStdin(), cmd.OutOrStdout())
}

// runBrowse is the event loop. Each line is one input event and runs to
// completion before the next is read.
func runBrowse(ctl *view.Controller, r *render.Renderer, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Loaded %s conferences. Type help for commands.\n", r.Int(ctl.Len()))
	r.Table(out, ctl.Window())

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}

		verb, arg, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(verb) {
		case "":
			continue
		case "quit", "exit", "q":
			return nil
		case "help", "?":
			fmt.Fprintln(out, "commands: search, year, category, class, clear, sort, next, prev, page, show, stats, options, quit")
		case "search":
			r.Table(out, ctl.SetSearch(arg))
		case "year":
			r.Table(out, ctl.SetYear(clearArg(arg)))
		case "category":
			r.Table(out, ctl.SetCategory(clearArg(arg)))
		case "class":
			r.Table(out, ctl.SetClassification(clearArg(arg)))
		case "clear":
			r.Table(out, ctl.ClearFilters())
		case "sort":
			key, ok := ordering.ParseKey(arg)
			if !ok {
				fmt.Fprintf(out, "unknown sort key %q\n", arg)
				continue
			}
			w := ctl.ToggleSort(key)
			fmt.Fprintf(out, "sorted by %s (%s)\n", ctl.State().SortKey, ctl.State().Direction)
			r.Table(out, w)
		case "next", "n":
			r.Table(out, ctl.ChangePage(1))
		case "prev", "p":
			r.Table(out, ctl.ChangePage(-1))
		case "page":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(out, "invalid page %q\n", arg)
				continue
			}
			r.Table(out, ctl.GoToPage(n))
		case "show":
			rec, ok := ctl.Lookup(arg)
			if !ok {
				fmt.Fprintf(out, "no conference with acronym %q\n", arg)
				continue
			}
			r.Detail(out, rec)
		case "stats":
			r.Summary(out, ctl.Summary())
		case "options":
			o := ctl.Options()
			r.Options(out, o.Years, o.Categories, o.Classifications)
		default:
			fmt.Fprintf(out, "unknown command %q (try help)\n", verb)
		}
	}
}

// clearArg maps "-" to the empty filter value.
func clearArg(s string) string {
	if s == "-" {
		return ""
	}
	return s
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
