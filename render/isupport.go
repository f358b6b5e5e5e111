package render

import (
	"io"
	"strconv"

	"github.com/boreq/ircline/irc/isupport"
	"github.com/olekukonko/tablewriter"
)

// ISupportTable writes the tokens as a table.
func ISupportTable(w io.Writer, tokens []isupport.Token) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Value", "Set"})
	table.SetAutoWrapText(false)
	for _, token := range tokens {
		value := ""
		if token.HasValue {
			value = strconv.Quote(token.Value)
		}
		table.Append([]string{token.Name, value, strconv.FormatBool(!token.Negated)})
	}
	table.Render()
}
