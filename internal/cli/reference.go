package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ppiankov/geoshort/internal/tables"
)

// referenceCmd represents the reference command
var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Print the shorthand quick reference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeReference(os.Stdout, tables.Default())
	},
}

func init() {
	rootCmd.AddCommand(referenceCmd)
}

var constructionRows = [][2]string{
	{"P:A", "point A"},
	{"P:A,B,C", "several points"},
	{"P:E=ABxCD", "E is the intersection of AB and CD"},
	{"P:C.AB", "point C on AB"},
	{"P:C.AB|AC=3", "point C on AB with conditions (separated by , or |)"},
	{"P:A|{(0,0)}", "point A at coordinates"},
	{"S:AB  S:AB,BC", "segment(s)"},
	{"L:AB", "line"},
	{"W:AB", "ray"},
	{"C:O;5  C:O;A  C:A;B;C", "circle by radius, through a point, or through three points"},
	{"J:ABCD  J:ABCD*CV", "polygon, optionally with a property"},
	{"R:n;AB=ABC", "regular n-gon on side AB"},
	{"G:{y=x^2}", "graph a function"},
}

var queryRows = [][2]string{
	{"[ABC]?  [ABC]=6", "area"},
	{"(ABC)?  (ABC)=12", "perimeter"},
	{"<ABC=90  ∠ABC?", "angle"},
	{"x=?  AB=CD", "value and equality"},
	{"ABC*IS?", "property check"},
	{"AB;CD*P?", "relationship check"},
	{`AB=CD\?`, "prove that"},
	{`\p:goal  \pC:goal`, "begin a (contradiction) proof"},
	{`\q  \qC  \bc  \th`, "QED, contradiction, because, therefore"},
	{"main<<1(A:case,result);2(...)>>", "casework"},
	{`\\P:A/P:B\\`, "a block; statements split on /"},
}

func writeReference(out io.Writer, tbl *tables.Tables) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	section := func(title string) {
		fmt.Fprintf(w, "\n%s\n", title)
	}
	row := func(code, meaning string) {
		fmt.Fprintf(w, "  %s\t%s\n", code, meaning)
	}

	section("Constructions")
	for _, r := range constructionRows {
		row(r[0], r[1])
	}

	section("Measurements, queries and proofs")
	for _, r := range queryRows {
		row(r[0], r[1])
	}

	section("Properties (obj*CODE)")
	for _, p := range tbl.Properties() {
		row(p.Code, p.Term)
	}

	section("Relationships (obj;obj*CODE)")
	for _, e := range tbl.Relationships() {
		row(e.Code, e.Term)
	}

	section("Regular polygons (R:n;...)")
	for n := 3; n <= 8; n++ {
		row(strconv.Itoa(n), tbl.PolygonName(strconv.Itoa(n)))
	}

	section("Theorems (append _CODE to cite)")
	for _, e := range tbl.Theorems() {
		row(e.Code, e.Term)
	}

	section("Constants")
	for _, e := range tbl.Constants() {
		row(e.Code, e.Term)
	}

	section("Connectives and inequalities")
	for _, e := range tbl.Connectives() {
		row(e.Code, e.Term)
	}
	for _, e := range tbl.InequalitySymbols() {
		row(e.Code, e.Term)
	}
	for _, e := range tbl.Inequalities() {
		row(e.Code, e.Term)
	}

	section("Tips")
	row("-", "separate statements with /; wrap a whole block in \\\\ ... \\\\")
	row("-", "'geoshort translate --copy' prints just the English, one line per statement")
	row("-", "'geoshort translate -f json' shows which rule matched each statement")

	return w.Flush()
}
