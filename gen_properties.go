//go:build generate

// This program generates the break class tables for the line,
// sentence, and word parsers from the Unicode Character Database
// files LineBreak.txt, SentenceBreakProperty.txt, and
// WordBreakProperty.txt.
//
//go:generate go run gen_properties.go

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// A source is one UCD property file and the translation from its
// class names to this package's constants. Classes translating to ""
// are defaults and not listed.
type source struct {
	url       string
	note      string
	translate func(string) string
}

// A table describes one generated table file: the UCD sources merged
// into it, the output file, and the variable it defines.
type table struct {
	sources  []source
	target   string
	variable string
}

var tables = []table{
	{
		sources: []source{
			{url: `https://www.unicode.org/Public/17.0.0/ucd/LineBreak.txt`, translate: translateLineClass},
		},
		target:   "lineproperties.go",
		variable: "lineBreakCodePoints",
	},
	{
		sources: []source{
			{url: `https://www.unicode.org/Public/17.0.0/ucd/auxiliary/SentenceBreakProperty.txt`, translate: translateSentenceClass},
		},
		target:   "sentenceproperties.go",
		variable: "sentenceBreakCodePoints",
	},
	{
		sources: []source{
			{url: `https://www.unicode.org/Public/17.0.0/ucd/auxiliary/WordBreakProperty.txt`, translate: translateWordClass},
			{
				url:       `https://www.unicode.org/Public/17.0.0/ucd/emoji/emoji-data.txt`,
				note:      `("Extended_Pictographic" only)`,
				translate: translateExtPict,
			},
		},
		target:   "wordproperties.go",
		variable: "wordBreakCodePoints",
	},
}

// The regular expression for a line assigning a break class to a code
// point or range.
var classPattern = regexp.MustCompile(`^([0-9A-F]{4,6})(\.\.([0-9A-F]{4,6}))?\s*;\s*(\w+)\s*#\s*(.+)$`)

func main() {
	log.SetPrefix("gen_properties: ")
	log.SetFlags(0)

	for _, t := range tables {
		src, err := parse(t)
		if err != nil {
			log.Fatal(err)
		}

		formatted, err := format.Source([]byte(src))
		if err != nil {
			log.Fatal("gofmt:", err)
		}

		log.Print("Writing to ", t.target)
		if err := os.WriteFile(t.target, formatted, 0644); err != nil {
			log.Fatal(err)
		}
	}
}

func parse(t table) (string, error) {
	var properties [][4]string
	for _, src := range t.sources {
		props, err := fetch(src)
		if err != nil {
			return "", fmt.Errorf("%s: %v", src.url, err)
		}
		properties = append(properties, props...)
	}

	// Avoid overflow during binary search.
	if len(properties) >= 1<<31 {
		return "", errors.New("too many properties")
	}

	sort.Slice(properties, func(i, j int) bool {
		left, _ := strconv.ParseUint(properties[i][0], 16, 64)
		right, _ := strconv.ParseUint(properties[j][0], 16, 64)
		return left < right
	})

	// Header.
	var buf bytes.Buffer
	buf.WriteString(`// Code generated via go generate from gen_properties.go. DO NOT EDIT.

package textseg

// ` + t.variable + ` are taken from
`)
	for i, src := range t.sources {
		if i > 0 {
			buf.WriteString("// and\n")
		}
		buf.WriteString("// " + src.url + "\n")
		if src.note != "" {
			buf.WriteString("// " + src.note + "\n")
		}
	}
	buf.WriteString(`// on ` + time.Now().Format("January 2, 2006") + `. See https://www.unicode.org/license.html for the Unicode
// license agreement.
var ` + t.variable + ` = [][3]int{
`)

	for _, prop := range properties {
		fmt.Fprintf(&buf, "\t{0x%s, 0x%s, %s}, // %s\n", prop[0], prop[1], prop[2], prop[3])
	}

	buf.WriteString("}\n")

	return buf.String(), nil
}

func fetch(src source) ([][4]string, error) {
	log.Printf("Parsing %s", src.url)
	res, err := http.Get(src.url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var properties [][4]string

	scanner := bufio.NewScanner(res.Body)
	num := 0
	for scanner.Scan() {
		num++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines.
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}

		from, to, class, comment, err := parseClass(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", num, err)
		}
		value := src.translate(class)
		if value == "" {
			continue // default class, not listed
		}
		properties = append(properties, [4]string{from, to, value, comment})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return properties, nil
}

// parseClass parses a line assigning a break class to a code point or
// range of code points.
func parseClass(line string) (from, to, class, comment string, err error) {
	fields := classPattern.FindStringSubmatch(line)
	if fields == nil {
		err = errors.New("no class found")
		return
	}
	from = fields[1]
	to = fields[3]
	if to == "" {
		to = from
	}
	class = fields[4]
	comment = fields[5]
	return
}

func translateWordClass(class string) string {
	switch class {
	case "CR":
		return "prCR"
	case "LF":
		return "prLF"
	case "Newline":
		return "prNewline"
	case "Extend":
		return "prExtend"
	case "ZWJ":
		return "prZWJ"
	case "Format":
		return "prFormat"
	case "Regional_Indicator":
		return "prRI29"
	case "Katakana":
		return "prKatakana"
	case "Hebrew_Letter":
		return "prHebrewLetter"
	case "ALetter":
		return "prALetter"
	case "Single_Quote":
		return "prSingleQuote"
	case "Double_Quote":
		return "prDoubleQuote"
	case "MidNumLet":
		return "prMidNumLet"
	case "MidLetter":
		return "prMidLetter"
	case "MidNum":
		return "prMidNum"
	case "Numeric":
		return "prNumeric"
	case "ExtendNumLet":
		return "prExtendNumLet"
	case "WSegSpace":
		return "prWSegSpace"
	}
	return ""
}

func translateExtPict(class string) string {
	if class == "Extended_Pictographic" {
		return "prExtPict"
	}
	return ""
}

func translateSentenceClass(class string) string {
	switch class {
	case "CR":
		return "prCR"
	case "LF":
		return "prLF"
	case "Extend":
		return "prExtend"
	case "Format":
		return "prFormat"
	case "Sp":
		return "prSp"
	case "Sep":
		return "prSep"
	case "STerm":
		return "prSTerm"
	case "ATerm":
		return "prATerm"
	case "Close":
		return "prClose"
	case "SContinue":
		return "prSContinue"
	case "Upper":
		return "prUpper"
	case "Lower":
		return "prLower"
	case "OLetter":
		return "prOLetter"
	}
	return ""
}

func translateLineClass(class string) string {
	switch class {
	case "BK":
		return "prBK"
	case "CR":
		return "prCR"
	case "LF":
		return "prLF"
	case "NL":
		return "prNL"
	case "SP":
		return "prSP"
	case "ZW":
		return "prZW"
	case "WJ":
		return "prWJ"
	case "ZWJ":
		return "prZWJ"
	case "GL":
		return "prGL"
	case "BA":
		return "prBA"
	case "HY":
		return "prHY"
	case "CL":
		return "prCL"
	case "CP":
		return "prCP"
	case "EX":
		return "prEX"
	case "IS":
		return "prIS"
	case "SY":
		return "prSY"
	case "OP":
		return "prOP"
	case "QU":
		return "prQU"
	case "NS", "CJ":
		return "prNS"
	case "NU":
		return "prNU"
	case "AL", "AI", "SG", "XX", "SA":
		return "prAL"
	case "HL":
		return "prHL"
	case "PR":
		return "prPR"
	case "PO":
		return "prPO"
	case "ID", "EB", "EM":
		return "prID"
	case "IN":
		return "prIN"
	case "CB":
		return "prCB"
	case "BB":
		return "prBB"
	case "B2":
		return "prB2"
	case "CM":
		return "prCM"
	case "RI":
		return "prRI"
	case "JL":
		return "prJL"
	case "JV":
		return "prJV"
	case "JT":
		return "prJT"
	case "H2":
		return "prH2"
	case "H3":
		return "prH3"
	}
	return ""
}
