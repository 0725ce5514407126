// Sample program that walks every statement shape through the translator
// and prints the rule each one matched
package main

import (
	"fmt"
	"strings"

	"github.com/ppiankov/geoshort/internal/tables"
	"github.com/ppiankov/geoshort/internal/translate"
)

func main() {
	fmt.Println("=== geoshort statement samples ===")
	fmt.Println()

	groups := []struct {
		title   string
		samples []string
	}{
		{"Constructions", []string{
			"P:A", "P:A,B,C", "P:E=ABxCD", "P:C.AB", "P:C.AB|AC=3,R:3;AB=ABD",
			"P:A|{(0,0)}", "S:AB", "S:AB,BC,CA", "S:ABP:C", "L:AB", "W:AB",
			"C:O;5", "C:O;A", "C:A;B;C", "J:ABCD", "J:ABCD*TR", "R:6;AB=ABCDEF", "G:{y=x^2}",
		}},
		{"Measurements and assertions", []string{
			"[ABC]?", "[ABC]=24", "(ABC)=12", "<ABC=90", "∠ABC?", "x=?", "AB=BC",
			"AB+BC=AC+10", "ABC*IS?", "ABCD*PL", "AB;BC*PR?", "AB;CD*∥",
		}},
		{"Proofs", []string{
			`\p:AB=BC`, `\pC{ABC*EQ}`, `\bc`, `\th`, `\q`, `\qC`, `AB=BC\?`,
			"AB*CD+AD*BC=AC*BD_PT", `AB!=CD\orAB>=CD`,
		}},
		{"Casework", []string{
			"x^2=4<<1(A:x>0,x=2);2(A:x<0,x=-2)>>", "<<", ">>",
		}},
	}

	tr := translate.NewTranslator(tables.Default(), 0)

	for _, g := range groups {
		fmt.Println(g.title)
		fmt.Println(strings.Repeat("-", 60))
		for _, s := range g.samples {
			shape, text := tr.Explain(s)
			fmt.Printf("  %-32s [%s]\n", s, shape)
			for _, line := range strings.Split(text, "\n") {
				fmt.Printf("      %s\n", line)
			}
		}
		fmt.Println()
	}
}
