package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/investmate"
	md "github.com/nao1215/markdown"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// SummaryMarkdown renders the portfolio summary as markdown.
func SummaryMarkdown(s *investmate.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	owner := s.Owner.FullName
	if owner == "" {
		owner = s.Owner.Email
	}
	doc.H1(fmt.Sprintf("Portfolio of %s", owner))

	if len(s.Assets) == 0 {
		doc.PlainText("No assets yet.")
		return doc.String()
	}

	doc.H2("Assets")
	table := md.TableSet{Header: []string{"ID", "Name", "Type", "Value"}}
	for _, a := range s.Assets {
		value := a.Value
		if a.Numeric {
			value = a.Amount.String()
		}
		table.Rows = append(table.Rows, []string{a.ID, a.Name, a.Type, value})
	}
	doc.Table(table)

	if len(s.ByType) > 0 {
		doc.H2("By Type")
		table := md.TableSet{Header: []string{"Type", "Assets", "Total"}}
		for _, t := range s.ByType {
			table.Rows = append(table.Rows, []string{t.Type, fmt.Sprint(t.Count), t.Total.String()})
		}
		doc.Table(table)
	}

	doc.H2("Zakat")
	doc.PlainText(fmt.Sprintf("Wealth of %d asset(s): %s", s.Counted, md.Bold(s.Wealth.String())))
	doc.PlainText("")
	if s.ZakatDue.IsZero() {
		doc.PlainText(fmt.Sprintf("No zakat due at %s.", s.RatePercent()))
	} else {
		doc.PlainText(fmt.Sprintf("Zakat due at %s: %s", s.RatePercent(), md.Bold(s.ZakatDue.String())))
	}

	if len(s.Skipped) > 0 {
		doc.H2("Not Counted")
		var items []string
		for _, a := range s.Skipped {
			items = append(items, fmt.Sprintf("%s (%s): %q is not a number", a.Name, a.ID, a.Value))
		}
		doc.BulletList(items...)
	}

	return doc.String()
}

// SummaryHTML renders the portfolio summary as an HTML fragment.
func SummaryHTML(s *investmate.Summary) (string, error) {
	var buf bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := gm.Convert([]byte(SummaryMarkdown(s)), &buf); err != nil {
		return "", fmt.Errorf("cannot convert summary to HTML: %w", err)
	}
	return buf.String(), nil
}
