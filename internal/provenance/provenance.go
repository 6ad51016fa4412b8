// Package provenance builds the comment-block header prepended to GIS and
// ILP output files: network stats, encoding parameters, and reproducibility
// info (repo/branch/commit when discoverable, hostname, date, label map,
// twin map), grounded on identifying_codes.py's _get_header/_get_label_map.
package provenance

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/netsensor/idcode/internal/preprocess"
)

// Header describes everything needed to render a provenance block.
type Header struct {
	NetworkFile         string
	Encoding            string // "gis" or "ilp"
	TwoStep             bool
	K                   int
	RemoveSupersets     bool
	Check2Neighbourhood bool
	TwinsRemoved        bool
	NumVertices         int
	NumEdges            int
	ProjectDir          string
	Hostname            string
	LabelMap            *preprocess.LabelMap
	TwinMap             preprocess.TwinMap
	Now                 time.Time
}

// Build renders h into a multi-line header string, newline-terminated
// lines only (no comment-prefixing — WriteDIMACS and WriteLP add their own
// "c "/"\ " prefixes per format).
func Build(h Header) string {
	var b strings.Builder

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "NETWORK DATA")
	fmt.Fprintln(&b, "------------")
	fmt.Fprintf(&b, "Network file:     %s\n", h.NetworkFile)
	fmt.Fprintf(&b, "Twins removed?    %s\n", yesNo(h.TwinsRemoved))
	fmt.Fprintf(&b, "Number of nodes (after preprocess): %d\n", h.NumVertices)
	fmt.Fprintf(&b, "Number of edges (after preprocess): %d\n", h.NumEdges)

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "ENCODING INFO")
	fmt.Fprintln(&b, "-------------")
	fmt.Fprintf(&b, "Encoding:          %s\n", h.Encoding)
	fmt.Fprintf(&b, "Approach:          %s\n", approach(h.TwoStep))
	fmt.Fprintf(&b, "k:                 %d\n", h.K)
	if h.Encoding == "ilp" {
		fmt.Fprintf(&b, "remove_supersets:  %s\n", yesNo(h.RemoveSupersets))
		fmt.Fprintf(&b, "check_2_neighbourhood: %s\n", yesNo(h.Check2Neighbourhood))
	}

	repo, branch, commit := gitInfo(h.ProjectDir)
	if repo != "" {
		fmt.Fprintf(&b, "Repository:        %s\n", repo)
		fmt.Fprintf(&b, "Branch:            %s\n", branch)
		fmt.Fprintf(&b, "Commit:            %s\n", commit)
	}
	fmt.Fprintf(&b, "Machine:           %s\n", h.Hostname)
	fmt.Fprintf(&b, "Date (YYYY-MM-DD): %s\n", h.Now.Format("2006-01-02"))
	fmt.Fprintln(&b)

	writeLabelMap(&b, h.LabelMap)
	if h.TwinMap != nil {
		writeTwinMap(&b, h.LabelMap, h.TwinMap)
	}

	return b.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func approach(twoStep bool) string {
	if twoStep {
		return "two-step"
	}
	return "one-step"
}

func writeLabelMap(b *strings.Builder, lm *preprocess.LabelMap) {
	fmt.Fprintln(b)
	fmt.Fprintln(b, "VARIABLE MAP")
	fmt.Fprintln(b, "------------")
	fmt.Fprintln(b)
	fmt.Fprintf(b, "%10s %s\n", "variable", "original name")
	for _, entry := range lm.Ordered() {
		fmt.Fprintf(b, "%10d %s\n", entry.ID, entry.Label)
	}
	fmt.Fprintln(b)
}

func writeTwinMap(b *strings.Builder, lm *preprocess.LabelMap, tm preprocess.TwinMap) {
	fmt.Fprintln(b)
	fmt.Fprintln(b, "TWIN MAP")
	fmt.Fprintln(b, "--------")
	fmt.Fprintln(b)
	fmt.Fprintf(b, "%s  %s\n", "node name", "replaced by twin")

	ids := make([]int, 0, len(tm))
	for id := range tm {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		rep, _ := lm.Label(id)
		for _, twin := range tm[id] {
			if twin == rep {
				continue
			}
			fmt.Fprintf(b, "%s  %s\n", twin, rep)
		}
	}
	fmt.Fprintln(b)
}

// gitInfo shells out to git the way identifying_codes.py's _get_header
// does, returning empty strings (not an error) when projectDir is empty or
// git is unavailable — provenance is best-effort.
func gitInfo(projectDir string) (repo, branch, commit string) {
	if projectDir == "" {
		return "", "", ""
	}
	gitDir := projectDir + "/.git"

	repo = runGit(gitDir, "config", "--get", "remote.origin.url")
	branchOut := runGit(gitDir, "branch", "--show-current")
	commit = runGit(gitDir, "log", "--format=%H", "-n", "1")
	return repo, branchOut, commit
}

func runGit(gitDir string, args ...string) string {
	full := append([]string{"--git-dir", gitDir}, args...)
	out, err := exec.Command("git", full...).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
