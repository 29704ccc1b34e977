// ABOUTME: Assembles the complete HTML report from rendered rows.
// ABOUTME: Writes the static header, each visible row in order, then the footer.

package render

import (
	"bytes"
	"io"
)

// Header opens the document and the snippet table.
const Header = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Dash Snippets</title>
  <meta name="description" content="">
  <meta name="generator" content="dash2html" />
  <meta name="viewport" content="width=device-width, initial-scale=1">

  <link href="//fonts.googleapis.com/css?family=Raleway:400,300,600" rel="stylesheet" type="text/css">
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/skeleton/2.0.4/skeleton.min.css">
  <style>
    .snippet-body {
      white-space: pre-wrap;
    }
    .tag {
      background-color: aliceblue;
      padding: 2px 8px;
      border-radius: 12px;
      border: 1px solid lightblue;
      font-size: smaller;
    }
    .variable {
      color: mediumvioletred;
    }
    .placeholder {
      color: blueviolet;
    }
    footer {
      font-size: small;
      color: lightslategray;
      text-align: center;
    }
  </style>
</head>
<body>

  <div class="container">
    <header class="row">
      <h1>Dash Snippets</h1>
    </header>
    <section class="row">
      <table>
        <thead>
          <tr><th>Abbreviation</th><th>Snippet</th><th>Tags</th></tr>
        </thead>
        <tbody>
`

// Footer closes the table and the document.
const Footer = `
        </tbody>
      </table>
    </section>
    <footer>
      Generated using
      <a href="https://github.com/wezm/dash2html">dash2html</a>
    </footer>
  </div>

</body>
</html>
`

// Stats counts what Assemble did with its input.
type Stats struct {
	Seen     int
	Rendered int
	Skipped  int
}

// Assemble writes the full document for records, in order. The document is
// built in memory and written with a single call, so w never receives a
// partial report from this function.
func Assemble(w io.Writer, records []Record) (Stats, error) {
	var buf bytes.Buffer
	stats := build(&buf, records)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return stats, err
	}
	return stats, nil
}

// build appends the document for records to buf.
func build(buf *bytes.Buffer, records []Record) Stats {
	var stats Stats

	buf.WriteString(Header)
	for _, r := range records {
		stats.Seen++
		row, ok := Row(r.Snippet, r.Tags)
		if !ok {
			stats.Skipped++
			continue
		}
		stats.Rendered++
		buf.WriteString(row)
		buf.WriteByte('\n')
	}
	buf.WriteString(Footer)

	return stats
}
